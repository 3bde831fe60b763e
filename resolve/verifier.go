package resolve

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/rathaus"
)

// DefaultIdentityTimeout bounds the homepage body fetch of the identity
// check. Official sites answer fast; a slow candidate is treated as a
// failed resolution, not retried.
const DefaultIdentityTimeout = 3 * time.Second

// CandidateVerifier confirms whether a candidate URL is the official site
// of a municipality.
type CandidateVerifier interface {
	// Verify returns whether the candidate was confirmed. A non-nil error
	// means verification cannot continue for this municipality at all and
	// the caller must stop trying further candidates.
	Verify(ctx context.Context, municipality, url string) (bool, error)
}

// Ensure Verifier implements CandidateVerifier at compile time.
var _ CandidateVerifier = (*Verifier)(nil)

// Verifier performs the two-step confirmation of a candidate URL:
// a header-only existence check followed by a model identity check over
// the scraped homepage text.
type Verifier struct {
	Fetcher   rathaus.Fetcher
	Texts     rathaus.TextExtractor
	Completer rathaus.Completer

	// IdentityTimeout bounds the homepage body fetch.
	// Defaults to DefaultIdentityTimeout.
	IdentityTimeout time.Duration
}

// Verify confirms the candidate URL for the municipality.
//
// A failed existence check or a non-200 body fetch rejects the candidate
// (false, nil): the caller moves on to the next one. A transport failure
// (timeout, refused connection) during the body fetch instead aborts the
// whole verification process (false, err): resolving this municipality
// ends immediately with "not found".
func (v *Verifier) Verify(ctx context.Context, municipality, url string) (bool, error) {
	if err := v.Fetcher.Head(ctx, url); err != nil {
		return false, nil
	}

	fctx, cancel := context.WithTimeout(ctx, v.timeout())
	defer cancel()

	html, err := v.Fetcher.Fetch(fctx, url)
	if err != nil {
		if rathaus.ErrorCode(err) == rathaus.EUNAVAILABLE {
			return false, err
		}
		return false, nil
	}

	text, err := v.Texts.ExtractText(html)
	if err != nil {
		return false, nil
	}

	answer, err := v.Completer.Complete(ctx, System, IdentityPrompt(municipality, truncate(text, ExcerptLimit)))
	if err != nil {
		return false, nil
	}

	return strings.Contains(answer, ConfirmToken), nil
}

func (v *Verifier) timeout() time.Duration {
	if v.IdentityTimeout > 0 {
		return v.IdentityTimeout
	}
	return DefaultIdentityTimeout
}

// truncate limits s to at most n characters (runes, not bytes, so a
// multi-byte umlaut is never split).
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
