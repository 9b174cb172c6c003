package pronounce

import (
	"bufio"
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
)

//go:embed data/cmudict-en-us.dict
var dictionaryData []byte

// ErrMalformedDictionary marks unreadable dictionary data.
var ErrMalformedDictionary = errors.New("malformed pronunciation dictionary")

// Dictionary maps lowercase words to phoneme sequences. Alternative
// pronunciations are separate entries keyed "word(2)", "word(3)" and so on.
type Dictionary struct {
	entries map[string][]Sound
}

// ParseDictionary reads "word PH PH ..." lines. Every line must carry a word
// followed by at least one valid sound, and no word may appear twice.
func ParseDictionary(r io.Reader) (*Dictionary, error) {
	d := &Dictionary{entries: make(map[string][]Sound)}

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		word, rest, ok := strings.Cut(line, " ")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: missing pronunciation for %q", ErrMalformedDictionary, lineNo, line)
		}

		fields := strings.Fields(rest)
		sounds := make([]Sound, 0, len(fields))
		for _, f := range fields {
			s, err := ParseSound(f)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedDictionary, lineNo, err)
			}
			sounds = append(sounds, s)
		}
		if len(sounds) == 0 {
			return nil, fmt.Errorf("%w: line %d: missing pronunciation for %q", ErrMalformedDictionary, lineNo, word)
		}

		if _, dup := d.entries[word]; dup {
			return nil, fmt.Errorf("%w: line %d: duplicate word %q", ErrMalformedDictionary, lineNo, word)
		}

		d.entries[word] = sounds
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}

	return d, nil
}

// Lookup returns the pronunciation of an exact, lowercase word. Missing words
// report false rather than a guessed pronunciation.
func (d *Dictionary) Lookup(word string) ([]Sound, bool) {
	if d == nil {
		return nil, false
	}
	sounds, ok := d.entries[word]
	if !ok {
		return nil, false
	}
	return slices.Clone(sounds), true
}

// Len returns the number of entries, alternatives included.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// Default returns the embedded dictionary, parsed once on first use.
var Default = sync.OnceValue(func() *Dictionary {
	d, err := ParseDictionary(bytes.NewReader(dictionaryData))
	if err != nil {
		panic(err)
	}
	return d
})

// Lookup queries the embedded dictionary.
func Lookup(word string) ([]Sound, bool) {
	return Default().Lookup(word)
}
