// Package trafilatura provides a rathaus.TextExtractor built on
// go-trafilatura's boilerplate-removing content extraction.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/rathaus"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements rathaus.TextExtractor at compile time.
var _ rathaus.TextExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract readable text from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText processes raw HTML and returns the page content as plain
// text. Blank lines and per-line leading/trailing whitespace are removed
// so the result can be embedded in prompts without padding.
func (e *Extractor) ExtractText(rawHTML string) (string, error) {
	if rawHTML == "" {
		return "", rathaus.Errorf(rathaus.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return "", rathaus.Errorf(rathaus.EINTERNAL, "extract text: %v", err)
	}

	return CleanText(result.ContentText), nil
}

// CleanText strips blank lines and surrounding whitespace from every line.
func CleanText(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
