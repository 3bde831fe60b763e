package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/rathaus"
)

// Ensure LoggingFetcher implements rathaus.Fetcher.
var _ rathaus.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with per-request logging.
type LoggingFetcher struct {
	next   rathaus.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next rathaus.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped Fetcher and logs the request.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"url", url,
			"chars", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Head delegates to the wrapped Fetcher and logs the request.
func (f *LoggingFetcher) Head(ctx context.Context, url string) (err error) {
	defer func(begin time.Time) {
		f.logger.Info("head",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Head(ctx, url)
}
