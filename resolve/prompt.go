package resolve

import "fmt"

// System is the system instruction for resolution-pass completions.
const System = "You are a helpful assistant."

// ConfirmToken is the literal token the identity prompt asks the model to
// answer with when it confirms a site. Confirmation requires the exact
// token to appear in the response.
const ConfirmToken = "[JA]"

// ExcerptLimit is the number of characters of homepage text included in
// the identity prompt.
const ExcerptLimit = 3000

// CandidatePrompt asks for up to three likely official URLs for the
// municipality, in a numbered list and nothing else.
func CandidatePrompt(municipality string) string {
	return fmt.Sprintf("Ich suche die offizielle URL für die Website der deutsche Stadt / Gemeinde / Kommune '%s'. "+
		"Bitte schlage die URL der offizielle Website vor wenn du dir sicher bist, oder bis zu 3 URLs, die höchstwahrscheinlich die offizielle Website der Stadt sind. "+
		"Die URLs sollten eine '.de' Domain haben und im Format einer offiziellen Stadt-Website sein, z.B. 'stadtname.de'. Erkläre deine Antwort nicht, antworte nur mit den URLs."+
		"Schreibe die URLs in diesem Format:\n"+
		"1. beispiel.de\n"+
		"2. beispiel.de\n"+
		"3. beispiel.de\n", municipality)
}

// IdentityPrompt asks whether the scraped homepage text belongs to the
// municipality's official site, to be confirmed with ConfirmToken.
func IdentityPrompt(municipality, excerpt string) string {
	return fmt.Sprintf("Ist dies die offizielle Website für die Stadt '%s'?\n"+
		"Wenn du denkst, es handelt sich hier höchstwahrscheinlich um die offizielle Website, antworte mit %s."+
		"Hier ist ein Teil des Textes, gescrapped von der Startseite: '%s'.\n",
		municipality, ConfirmToken, excerpt)
}
