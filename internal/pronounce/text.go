package pronounce

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Pronunciation is the dictionary result for one word of running text.
type Pronunciation struct {
	Word   string  `json:"word"`
	Sounds []Sound `json:"sounds,omitempty"`
	Found  bool    `json:"found"`
}

// PronounceText looks up every whitespace-separated word of text. Words are
// case-folded and stripped of surrounding punctuation first; hyphenated words
// missing from the dictionary are assembled from their parts.
func (d *Dictionary) PronounceText(text string) []Pronunciation {
	lower := cases.Lower(language.AmericanEnglish)

	fields := strings.Fields(text)
	out := make([]Pronunciation, 0, len(fields))
	for _, f := range fields {
		word := strings.TrimFunc(lower.String(f), func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if word == "" {
			continue
		}

		p := Pronunciation{Word: word}
		p.Sounds, p.Found = d.lookupCompound(word)
		out = append(out, p)
	}
	return out
}

func (d *Dictionary) lookupCompound(word string) ([]Sound, bool) {
	if sounds, ok := d.Lookup(word); ok {
		return sounds, true
	}
	if !strings.Contains(word, "-") {
		return nil, false
	}

	var sounds []Sound
	for _, part := range strings.Split(word, "-") {
		s, ok := d.Lookup(part)
		if !ok {
			return nil, false
		}
		sounds = append(sounds, s...)
	}
	return sounds, true
}

// PronounceText uses the embedded dictionary.
func PronounceText(text string) []Pronunciation {
	return Default().PronounceText(text)
}
