package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/rathaus"
	"github.com/fwojciec/rathaus/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements rathaus.TextExtractor at compile time.
var _ rathaus.TextExtractor = (*trafilatura.Extractor)(nil)

func TestExtractor_ExtractText(t *testing.T) {
	t.Parallel()

	t.Run("extracts page content as plain text", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Stadt Beispielstadt</title></head>
<body>
<nav><a href="/">Start</a><a href="/rathaus">Rathaus</a></nav>
<main>
<h1>Pressestelle der Stadt Beispielstadt</h1>
<p>Die Pressestelle informiert die Medien über aktuelle Themen der Stadtverwaltung.</p>
<p>Ansprechpartnerin: Anna Muster, Telefon 0351 123456.</p>
</main>
<footer>Impressum | Datenschutz</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		text, err := ext.ExtractText(html)

		require.NoError(t, err)
		assert.Contains(t, text, "Pressestelle informiert die Medien")
		assert.Contains(t, text, "Anna Muster")
		assert.NotContains(t, text, "<p>")
	})

	t.Run("output contains no blank lines", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<article>
<h1>Kontakt</h1>
<p>Erster Absatz mit Inhalt für die Extraktion.</p>
<p>Zweiter Absatz mit weiterem Inhalt.</p>
</article>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		text, err := ext.ExtractText(html)

		require.NoError(t, err)
		assert.NotContains(t, text, "\n\n")
	})

	t.Run("empty input is EINVALID", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, err := ext.ExtractText("")

		require.Error(t, err)
		assert.Equal(t, rathaus.EINVALID, rathaus.ErrorCode(err))
	})
}

func TestCleanText(t *testing.T) {
	t.Parallel()

	in := "  Pressestelle  \n\n\t\nTelefon: 0351 123456\n   \nE-Mail: presse@beispielstadt.de\n"
	out := trafilatura.CleanText(in)

	assert.Equal(t, "Pressestelle\nTelefon: 0351 123456\nE-Mail: presse@beispielstadt.de", out)
}
