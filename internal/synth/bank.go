package synth

import (
	"errors"
	"fmt"
	"slices"

	"github.com/example/go-fry-tts/internal/audio"
)

// Bank holds one fixed-length PCM snippet per letter. All snippets share the
// same length and format; a Bank is read-only after construction.
type Bank struct {
	format   audio.Format
	samples  int
	snippets map[rune][]int16
}

// NewBank builds a Bank from per-letter snippets. Shorter snippets are padded
// with trailing silence to the length of the longest one.
func NewBank(snippets map[rune][]int16, f audio.Format) (*Bank, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if len(snippets) == 0 {
		return nil, errors.New("letter bank is empty")
	}

	longest := 0
	for r, s := range snippets {
		if len(s) == 0 {
			return nil, fmt.Errorf("letter %q has an empty snippet", r)
		}
		longest = max(longest, len(s))
	}

	b := &Bank{
		format:   f,
		samples:  longest,
		snippets: make(map[rune][]int16, len(snippets)),
	}
	for r, s := range snippets {
		padded := make([]int16, longest)
		copy(padded, s)
		b.snippets[r] = padded
	}

	return b, nil
}

// Snippet returns the waveform for r.
func (b *Bank) Snippet(r rune) ([]int16, bool) {
	s, ok := b.snippets[r]
	return s, ok
}

// SamplesPerLetter is the length of every snippet.
func (b *Bank) SamplesPerLetter() int { return b.samples }

// Format is the PCM format of the snippets.
func (b *Bank) Format() audio.Format { return b.format }

// Letters lists the characters the bank can voice, sorted.
func (b *Bank) Letters() []rune {
	letters := make([]rune, 0, len(b.snippets))
	for r := range b.snippets {
		letters = append(letters, r)
	}
	slices.Sort(letters)
	return letters
}
