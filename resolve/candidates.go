// Package resolve determines the official website of a municipality:
// a model proposes candidate domains, each candidate is verified for
// reachability and semantic identity, and the first confirmed URL wins.
package resolve

import (
	"regexp"
	"strings"
)

// MaxCandidates bounds how many extracted domains are verified.
const MaxCandidates = 5

// domainPattern matches .de domains (including second-level .sachsen.de
// style) in free-form model output. The optional scheme and www. prefix
// are consumed but not captured.
var domainPattern = regexp.MustCompile(`\b(?:https?://)?(?:www\.)?([a-zA-Z0-9-]+\.sachsen\.de|[a-zA-Z0-9-]+\.de)\b`)

// ExtractCandidates parses free-form model text into an ordered,
// deduplicated list of up to MaxCandidates normalized candidate URLs
// (https:// plus bare domain). Matches are walked in reverse keeping the
// first occurrence of each normalized domain, so a domain the model
// repeats is collapsed to a single entry while the surviving entries keep
// their relative order. Text without any domain-shaped token yields an
// empty result; that is a normal outcome, not an error.
func ExtractCandidates(text string) []string {
	matches := domainPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(matches))
	reversed := make([]string, 0, len(matches))
	for i := len(matches) - 1; i >= 0; i-- {
		domain := strings.TrimPrefix(matches[i][1], "www.")
		if !seen[domain] {
			seen[domain] = true
			reversed = append(reversed, domain)
		}
	}

	urls := make([]string, 0, len(reversed))
	for i := len(reversed) - 1; i >= 0; i-- {
		urls = append(urls, "https://"+reversed[i])
	}

	if len(urls) > MaxCandidates {
		urls = urls[:MaxCandidates]
	}
	return urls
}
