package mock

import "github.com/fwojciec/rathaus"

var _ rathaus.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of rathaus.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(html string) (string, error)
}

func (e *TextExtractor) ExtractText(html string) (string, error) {
	return e.ExtractTextFn(html)
}

var _ rathaus.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of rathaus.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string, baseURL string) ([]string, error)
}

func (e *LinkExtractor) ExtractLinks(html string, baseURL string) ([]string, error) {
	return e.ExtractLinksFn(html, baseURL)
}
