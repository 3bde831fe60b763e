package contact

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/rathaus"
)

// DefaultHomepageTimeout bounds the homepage fetch that collects hrefs.
const DefaultHomepageTimeout = 5 * time.Second

// Finder runs the extraction chain for one confirmed site: homepage hrefs,
// subpage triage, content aggregation, best-contact evaluation, structured
// extraction.
type Finder struct {
	Fetcher   rathaus.Fetcher
	Links     rathaus.LinkExtractor
	Filter    *Filter
	Content   *Aggregator
	Completer rathaus.Completer
	Contacts  rathaus.ContactExtractor

	// HomepageTimeout bounds the href-collecting homepage fetch.
	// Defaults to DefaultHomepageTimeout.
	HomepageTimeout time.Duration

	// Logger for per-stage progress. Defaults to slog.Default().
	Logger *slog.Logger
}

// Find returns the extracted contact for the site, or nil when any stage
// comes up empty (no hrefs, no relevant subpages, no content, no model
// answer). An empty stage is a normal outcome; the error return is
// reserved for context cancellation. A failed structured extraction
// degrades to a contact with every field set to NotAvailable.
func (f *Finder) Find(ctx context.Context, siteURL string) (*rathaus.Contact, error) {
	links, err := f.scrapeLinks(ctx, siteURL)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		f.logger().Info("no hrefs found", "url", siteURL, "err", err)
		return nil, nil
	}
	if len(links) == 0 {
		f.logger().Info("no hrefs found", "url", siteURL)
		return nil, nil
	}

	subpages := f.Filter.SelectSubpages(ctx, links)
	if len(subpages) == 0 {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		f.logger().Info("no relevant subpages identified", "url", siteURL)
		return nil, nil
	}

	pages := f.Content.Collect(ctx, subpages)
	if len(pages) == 0 {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		f.logger().Info("no contact content collected", "url", siteURL)
		return nil, nil
	}

	best, err := f.Completer.Complete(ctx, System, BestContactPrompt(pages))
	if err != nil || best == "" {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		f.logger().Info("no contact answer from model", "url", siteURL, "err", err)
		return nil, nil
	}

	contact, err := f.Contacts.ExtractContact(ctx, best)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		f.logger().Info("structured extraction failed", "url", siteURL, "err", err)
		contact = rathaus.UnknownContact()
	}

	return &contact, nil
}

func (f *Finder) scrapeLinks(ctx context.Context, siteURL string) ([]string, error) {
	fctx, cancel := context.WithTimeout(ctx, f.timeout())
	defer cancel()

	html, err := f.Fetcher.Fetch(fctx, siteURL)
	if err != nil {
		return nil, err
	}

	return f.Links.ExtractLinks(html, siteURL)
}

func (f *Finder) timeout() time.Duration {
	if f.HomepageTimeout > 0 {
		return f.HomepageTimeout
	}
	return DefaultHomepageTimeout
}

func (f *Finder) logger() *slog.Logger {
	if f.Logger != nil {
		return f.Logger
	}
	return slog.Default()
}
