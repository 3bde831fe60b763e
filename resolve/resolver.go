package resolve

import (
	"context"

	"github.com/fwojciec/rathaus"
)

// Resolver orchestrates candidate generation and verification.
type Resolver struct {
	Completer rathaus.Completer
	Verifier  CandidateVerifier
}

// Resolve returns the confirmed official URL for the municipality, or ""
// when no candidate could be confirmed. Not finding a site is a normal
// outcome; the error return is reserved for context cancellation.
//
// Candidates are tried in order and the first confirmed one wins. When
// the verifier aborts (transport failure on a homepage fetch), the
// remaining candidates are not tried.
func (r *Resolver) Resolve(ctx context.Context, municipality string) (string, error) {
	answer, err := r.Completer.Complete(ctx, System, CandidatePrompt(municipality))
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", nil
	}

	for _, url := range ExtractCandidates(answer) {
		confirmed, err := r.Verifier.Verify(ctx, municipality, url)
		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			return "", nil
		}
		if confirmed {
			return url, nil
		}
	}

	return "", nil
}
