package mock

import (
	"context"

	"github.com/fwojciec/rathaus"
)

var _ rathaus.Completer = (*Completer)(nil)

// Completer is a mock implementation of rathaus.Completer.
type Completer struct {
	CompleteFn func(ctx context.Context, system string, messages ...string) (string, error)
}

func (c *Completer) Complete(ctx context.Context, system string, messages ...string) (string, error) {
	return c.CompleteFn(ctx, system, messages...)
}

var _ rathaus.ContactExtractor = (*ContactExtractor)(nil)

// ContactExtractor is a mock implementation of rathaus.ContactExtractor.
type ContactExtractor struct {
	ExtractContactFn func(ctx context.Context, text string) (rathaus.Contact, error)
}

func (e *ContactExtractor) ExtractContact(ctx context.Context, text string) (rathaus.Contact, error) {
	return e.ExtractContactFn(ctx, text)
}
