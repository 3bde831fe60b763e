package rathaus

import "context"

// Fetcher retrieves HTML from URLs over plain HTTP.
// Municipal sites are static; no JavaScript rendering is performed.
type Fetcher interface {
	// Fetch issues a GET request and returns the response body.
	// The context controls timeout and cancellation. A non-200 status
	// yields an ENOTFOUND error; transport failures yield EUNAVAILABLE.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Head issues a header-only request, following redirects.
	// Returns nil only for a final 200 status.
	Head(ctx context.Context, url string) error
}
