// Package contact extracts a press/social-media point of contact from a
// confirmed municipal website: a model triages the site's links, the
// selected subpages are scraped and aggregated, and a structured
// extraction call turns the best candidate into name/email/phone fields.
package contact

import (
	"context"
	"regexp"

	"github.com/fwojciec/rathaus"
)

// MaxSubpages bounds how many selected subpages are fetched.
const MaxSubpages = 3

// urlPattern matches URL-shaped substrings in free-form model output.
var urlPattern = regexp.MustCompile(`https?://\S+`)

// Filter asks the model which of a site's links are most likely to carry
// press/social-media contact details.
type Filter struct {
	Completer rathaus.Completer
}

// SelectSubpages returns up to MaxSubpages links from the given set, in
// the order the model named them. URLs the model invents are dropped:
// only members of the known link set survive. A model failure or an
// answer without any known link yields an empty result, which is a
// normal outcome.
func (f *Filter) SelectSubpages(ctx context.Context, links []string) []string {
	if len(links) == 0 {
		return nil
	}

	answer, err := f.Completer.Complete(ctx, System, SubpagePrompt(links))
	if err != nil {
		return nil
	}

	known := make(map[string]bool, len(links))
	for _, l := range links {
		known[l] = true
	}

	var selected []string
	for _, u := range urlPattern.FindAllString(answer, -1) {
		if known[u] {
			selected = append(selected, u)
			known[u] = false // each link at most once
		}
		if len(selected) == MaxSubpages {
			break
		}
	}
	return selected
}
