// Package mock provides mock implementations of rathaus interfaces.
package mock

import (
	"context"

	"github.com/fwojciec/rathaus"
)

var _ rathaus.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of rathaus.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	HeadFn  func(ctx context.Context, url string) error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Head(ctx context.Context, url string) error {
	return f.HeadFn(ctx, url)
}
