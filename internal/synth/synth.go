// Package synth speaks text by concatenating one pre-recorded PCM snippet per
// character into a fixed-capacity buffer.
package synth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"unicode"
	"unicode/utf8"

	"github.com/example/go-fry-tts/internal/audio"
	"github.com/example/go-fry-tts/internal/text"
)

const (
	// LetterBytes is the size of one recorded letter snippet in bytes.
	LetterBytes = 20810

	// LetterSamples is the length of one letter snippet in 16-bit samples.
	LetterSamples = LetterBytes / 2

	// MaxLetters is the default number of characters one call may voice.
	MaxLetters = 32
)

var (
	// ErrCapacityExceeded is returned when the input has more characters than
	// the synthesizer bound. Nothing is written in that case.
	ErrCapacityExceeded = errors.New("too many letters to synthesize")

	// ErrUnsupportedLetter is returned for a character with no snippet.
	ErrUnsupportedLetter = errors.New("no recording for character")

	// ErrBufferTooSmall is returned when the output buffer cannot hold the result.
	ErrBufferTooSmall = errors.New("output buffer too small")

	// ErrNothingToSynthesize is returned when text has no voiceable letters.
	ErrNothingToSynthesize = errors.New("nothing to synthesize")
)

// Synthesizer voices strings letter by letter from a Bank. It holds no
// mutable state and is safe for concurrent use.
type Synthesizer struct {
	bank       *Bank
	maxLetters int
	log        *slog.Logger
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithMaxLetters overrides the per-call character bound.
func WithMaxLetters(n int) Option {
	return func(s *Synthesizer) { s.maxLetters = n }
}

// WithLogger sets the logger used for rejected inputs.
func WithLogger(l *slog.Logger) Option {
	return func(s *Synthesizer) { s.log = l }
}

// New returns a Synthesizer over bank.
func New(bank *Bank, opts ...Option) (*Synthesizer, error) {
	if bank == nil {
		return nil, errors.New("letter bank is required")
	}

	s := &Synthesizer{
		bank:       bank,
		maxLetters: MaxLetters,
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.maxLetters < 1 {
		return nil, fmt.Errorf("invalid max letters: %d", s.maxLetters)
	}

	return s, nil
}

// MaxLetters is the most characters a single Synthesize call accepts.
func (s *Synthesizer) MaxLetters() int { return s.maxLetters }

// Format is the PCM format of the produced samples.
func (s *Synthesizer) Format() audio.Format { return s.bank.Format() }

// BufferSize is the number of samples needed to hold a full-capacity call.
func (s *Synthesizer) BufferSize() int {
	return s.maxLetters * s.bank.SamplesPerLetter()
}

// Synthesize copies one snippet per character of letters into buf and returns
// the number of characters voiced. Upper-case letters use the lower-case
// snippet. Inputs over the bound or with unknown characters fail without
// touching buf.
func (s *Synthesizer) Synthesize(letters string, buf []int16) (int, error) {
	n := utf8.RuneCountInString(letters)
	if n > s.maxLetters {
		s.log.Error("letter count exceeds synthesizer capacity",
			slog.Int("letters", n),
			slog.Int("max_letters", s.maxLetters),
		)
		return 0, fmt.Errorf("%w: %d letters, max %d", ErrCapacityExceeded, n, s.maxLetters)
	}

	per := s.bank.SamplesPerLetter()
	if len(buf) < n*per {
		return 0, fmt.Errorf("%w: need %d samples, have %d", ErrBufferTooSmall, n*per, len(buf))
	}

	snippets := make([][]int16, 0, n)
	for _, r := range letters {
		snippet, ok := s.bank.Snippet(unicode.ToLower(r))
		if !ok {
			s.log.Error("character does not correspond to a recorded sound", slog.String("char", string(r)))
			return 0, fmt.Errorf("%w: %q", ErrUnsupportedLetter, r)
		}
		snippets = append(snippets, snippet)
	}

	for i, snippet := range snippets {
		copy(buf[i*per:], snippet)
	}

	return n, nil
}

// Render voices letters into a newly allocated, exactly sized slice.
func (s *Synthesizer) Render(letters string) ([]int16, error) {
	buf := make([]int16, utf8.RuneCountInString(letters)*s.bank.SamplesPerLetter())
	n, err := s.Synthesize(letters, buf)
	if err != nil {
		return nil, err
	}
	return buf[:n*s.bank.SamplesPerLetter()], nil
}

// Chunks spells already-normalized text and splits it into pieces that each
// fit one Synthesize call.
func (s *Synthesizer) Chunks(normalized string) []string {
	return text.ChunkByLetters(Spell(normalized), s.maxLetters)
}

// Stream voices arbitrary-length normalized text chunk by chunk, handing
// each rendered chunk to emit. Consecutive chunks are separated by the space
// snippet when the bank has one.
func (s *Synthesizer) Stream(ctx context.Context, normalized string, emit func(pcm []int16) error) error {
	chunks := s.Chunks(normalized)
	if len(chunks) == 0 {
		return fmt.Errorf("%w: %q", ErrNothingToSynthesize, normalized)
	}

	gap, hasGap := s.bank.Snippet(' ')

	for i, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return err
		}
		pcm, err := s.Render(chunk)
		if err != nil {
			return fmt.Errorf("chunk %d: %w", i+1, err)
		}
		if i > 0 && hasGap {
			pcm = append(slices.Clip(gap), pcm...)
		}
		if err := emit(pcm); err != nil {
			return err
		}
	}
	return nil
}

// RenderText voices arbitrary-length normalized text into one buffer.
func (s *Synthesizer) RenderText(ctx context.Context, normalized string) ([]int16, error) {
	var out []int16
	err := s.Stream(ctx, normalized, func(pcm []int16) error {
		out = append(out, pcm...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Letters lists the characters the underlying bank can voice.
func (s *Synthesizer) Letters() []rune { return s.bank.Letters() }
