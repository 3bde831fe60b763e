package contact

import (
	"fmt"
	"strings"
)

// System is the system instruction for extraction-pass completions.
const System = "You are a helpful assistant specialized in navigating German government websites."

// SubpagePrompt lists every resolved href of a site and asks for the three
// links most likely to carry press/social-media contact details.
func SubpagePrompt(links []string) string {
	return fmt.Sprintf("Here is a list of hrefs from a German government website. "+
		"Return the three links that are most likely to include contact information "+
		"of the press and/or social media teams. Return nothing else.\n\n%s",
		strings.Join(links, "\n"))
}

// BestContactPrompt combines the collected subpage texts and asks for the
// single best point of contact.
func BestContactPrompt(pages []Page) string {
	blocks := make([]string, 0, len(pages))
	for _, p := range pages {
		blocks = append(blocks, fmt.Sprintf("URL: %s\n%s", p.URL, p.Text))
	}
	return "Here is the combined contact information extracted from several subpages of a German government website. " +
		"Based on the content and the URLs provided, determine which contact details are most likely from someone in " +
		"the social media or press team. Prioritize any named contacts with direct emails or phone numbers over generic ones. " +
		"Respond with the best single point of contact in the format: Name:, Email:, Phone, nothing else.\n\n" +
		strings.Join(blocks, "\n\n")
}
