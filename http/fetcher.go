// Package http provides an HTTP-based implementation of rathaus.Fetcher
// for fetching content from static municipal sites.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/rathaus"
)

// DefaultFetchTimeout is the default timeout for HTTP requests. Call sites
// that need a tighter bound (identity checks, subpage fetches) pass a
// context with a shorter deadline.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent is sent with every request. Municipal sites routinely
// reject the default Go user agent.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/58.0.3029.110 Safari/537.3"

// Ensure Fetcher implements rathaus.Fetcher at compile time.
var _ rathaus.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP requests.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the overall timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	// Redirects are followed by default, which Head relies on.
	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL. A transport failure
// (timeout, refused connection) yields EUNAVAILABLE; any non-200 status
// yields ENOTFOUND. Callers use the distinction to decide between aborting
// and skipping.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", rathaus.Errorf(rathaus.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", rathaus.Errorf(rathaus.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", rathaus.Errorf(rathaus.ENOTFOUND, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", rathaus.Errorf(rathaus.EUNAVAILABLE, "read %s: %v", url, err)
	}

	return string(body), nil
}

// Head issues a header-only request to the given URL, following redirects.
// Returns nil only when the final response status is 200.
func (f *Fetcher) Head(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return rathaus.Errorf(rathaus.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return rathaus.Errorf(rathaus.EUNAVAILABLE, "head %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return rathaus.Errorf(rathaus.ENOTFOUND, "HTTP %d for %s", resp.StatusCode, url)
	}

	return nil
}
