package rathaus

// TextExtractor extracts readable plain text from HTML pages.
type TextExtractor interface {
	// ExtractText processes raw HTML and returns the page content as
	// plain text with boilerplate and blank lines removed.
	ExtractText(html string) (string, error)
}

// LinkExtractor extracts hyperlink targets from HTML pages.
type LinkExtractor interface {
	// ExtractLinks parses HTML and returns the targets of all anchors,
	// resolved to absolute URLs against baseURL, deduplicated in
	// document order. Non-HTTP schemes (mailto:, javascript:) are skipped.
	ExtractLinks(html string, baseURL string) ([]string, error)
}
