// Package slog provides logging decorators for rathaus services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/rathaus"
)

// Ensure LoggingCompleter implements rathaus.Completer.
var _ rathaus.Completer = (*LoggingCompleter)(nil)

// LoggingCompleter wraps a Completer with call logging. At debug level the
// full prompt and response are dumped, which is the surface behind the
// CLI --debug flag.
type LoggingCompleter struct {
	next   rathaus.Completer
	logger *slog.Logger
}

// NewLoggingCompleter creates a new LoggingCompleter.
func NewLoggingCompleter(next rathaus.Completer, logger *slog.Logger) *LoggingCompleter {
	return &LoggingCompleter{next: next, logger: logger}
}

// Complete delegates to the wrapped Completer and logs the call.
func (c *LoggingCompleter) Complete(ctx context.Context, system string, messages ...string) (answer string, err error) {
	promptChars := len(system)
	for _, m := range messages {
		promptChars += len(m)
	}
	for i, m := range messages {
		c.logger.Debug("completion prompt", "message", i, "text", m)
	}

	defer func(begin time.Time) {
		c.logger.Info("completion",
			"prompt_chars", promptChars,
			"answer_chars", len(answer),
			"duration", time.Since(begin),
			"err", err,
		)
		c.logger.Debug("completion answer", "text", answer)
	}(time.Now())

	return c.next.Complete(ctx, system, messages...)
}
