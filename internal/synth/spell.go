package synth

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Spell reduces text to what a letter bank can voice: accents are stripped,
// letters are lower-cased, anything outside a-z becomes a word break, and
// runs of breaks collapse into a single space.
func Spell(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	stripped, _, err := transform.String(t, text)
	if err != nil {
		stripped = text
	}

	var b strings.Builder
	pendingSpace := false
	for _, r := range strings.ToLower(stripped) {
		if r < 'a' || r > 'z' {
			pendingSpace = b.Len() > 0
			continue
		}
		if pendingSpace {
			b.WriteByte(' ')
			pendingSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
