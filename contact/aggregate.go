package contact

import (
	"context"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/rathaus"
)

// DefaultSubpageTimeout bounds each subpage fetch.
const DefaultSubpageTimeout = 5 * time.Second

// Page is one selected subpage with its extracted text.
type Page struct {
	URL  string
	Text string
}

// Aggregator fetches the selected subpages and collects their plain text.
type Aggregator struct {
	Fetcher rathaus.Fetcher
	Texts   rathaus.TextExtractor

	// FetchTimeout bounds each subpage fetch.
	// Defaults to DefaultSubpageTimeout.
	FetchTimeout time.Duration

	// Logger for skipped subpages. Defaults to slog.Default().
	Logger *slog.Logger
}

// Collect returns the (url, text) pairs with non-empty text for the given
// subpages. A fetch failure or empty extraction for one subpage is logged
// and skipped; it never aborts the others. Subpages whose text is
// identical to one already collected are dropped so the evaluation prompt
// is not padded with duplicates. The result may be empty.
func (a *Aggregator) Collect(ctx context.Context, urls []string) []Page {
	seen := make(map[uint64]bool, len(urls))
	var pages []Page

	for _, url := range urls {
		text, err := a.collectOne(ctx, url)
		if err != nil {
			a.logger().Info("skipping subpage", "url", url, "err", err)
			continue
		}
		if text == "" {
			a.logger().Info("no content on subpage", "url", url)
			continue
		}

		digest := xxhash.Sum64String(text)
		if seen[digest] {
			a.logger().Debug("duplicate subpage content", "url", url)
			continue
		}
		seen[digest] = true

		pages = append(pages, Page{URL: url, Text: text})
	}

	return pages
}

func (a *Aggregator) collectOne(ctx context.Context, url string) (string, error) {
	fctx, cancel := context.WithTimeout(ctx, a.timeout())
	defer cancel()

	html, err := a.Fetcher.Fetch(fctx, url)
	if err != nil {
		return "", err
	}

	return a.Texts.ExtractText(html)
}

func (a *Aggregator) timeout() time.Duration {
	if a.FetchTimeout > 0 {
		return a.FetchTimeout
	}
	return DefaultSubpageTimeout
}

func (a *Aggregator) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.Default()
}
