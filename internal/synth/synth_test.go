package synth

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/example/go-fry-tts/internal/audio"
)

const testSamples = 64

func newTestSynth(t *testing.T, opts ...Option) *Synthesizer {
	t.Helper()

	bank, err := ToneBank(audio.DefaultFormat, testSamples)
	if err != nil {
		t.Fatalf("ToneBank: %v", err)
	}

	s, err := New(bank, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	return s
}

func TestSynthesizeSingleLetter(t *testing.T) {
	s := newTestSynth(t)
	buf := make([]int16, s.BufferSize())

	n, err := s.Synthesize("a", buf)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if n != 1 {
		t.Fatalf("letters = %d, want 1", n)
	}

	want, _ := s.bank.Snippet('a')
	if !slices.Equal(buf[:testSamples], want) {
		t.Error("output does not match the 'a' snippet")
	}
	for i, v := range buf[testSamples:] {
		if v != 0 {
			t.Fatalf("sample %d past the letter = %d, want untouched zero", testSamples+i, v)
		}
	}
}

func TestSynthesizeCounts(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"hello", 5},
		{"hello world", 11},
		{"HELLO", 5},
		{strings.Repeat("z", MaxLetters), MaxLetters},
	}

	s := newTestSynth(t)

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			buf := make([]int16, s.BufferSize())
			got, err := s.Synthesize(tt.input, buf)
			if err != nil {
				t.Fatalf("Synthesize(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Synthesize(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestSynthesizeUppercaseUsesLowercaseSnippet(t *testing.T) {
	s := newTestSynth(t)

	upper, err := s.Render("Q")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	lower, err := s.Render("q")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !slices.Equal(upper, lower) {
		t.Error("'Q' and 'q' render differently")
	}
}

func TestSynthesizeErrors(t *testing.T) {
	s := newTestSynth(t)

	t.Run("capacity exceeded", func(t *testing.T) {
		buf := make([]int16, (MaxLetters+1)*testSamples)
		n, err := s.Synthesize(strings.Repeat("a", MaxLetters+1), buf)
		if !errors.Is(err, ErrCapacityExceeded) {
			t.Fatalf("expected ErrCapacityExceeded, got %v", err)
		}
		if n != 0 {
			t.Errorf("letters = %d, want 0", n)
		}
		for _, v := range buf {
			if v != 0 {
				t.Fatal("buffer written despite capacity error")
			}
		}
	})

	t.Run("unsupported letter", func(t *testing.T) {
		buf := make([]int16, s.BufferSize())
		_, err := s.Synthesize("ab7", buf)
		if !errors.Is(err, ErrUnsupportedLetter) {
			t.Fatalf("expected ErrUnsupportedLetter, got %v", err)
		}
		for _, v := range buf {
			if v != 0 {
				t.Fatal("buffer written despite unsupported letter")
			}
		}
	})

	t.Run("buffer too small", func(t *testing.T) {
		buf := make([]int16, testSamples)
		_, err := s.Synthesize("ab", buf)
		if !errors.Is(err, ErrBufferTooSmall) {
			t.Fatalf("expected ErrBufferTooSmall, got %v", err)
		}
	})
}

func TestNewOptions(t *testing.T) {
	bank, err := ToneBank(audio.DefaultFormat, testSamples)
	if err != nil {
		t.Fatalf("ToneBank: %v", err)
	}

	if _, err := New(nil); err == nil {
		t.Error("expected error for nil bank")
	}
	if _, err := New(bank, WithMaxLetters(0)); err == nil {
		t.Error("expected error for zero max letters")
	}

	s, err := New(bank, WithMaxLetters(4))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.BufferSize() != 4*testSamples {
		t.Errorf("BufferSize = %d, want %d", s.BufferSize(), 4*testSamples)
	}
	if _, err := s.Render("abcde"); !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("expected ErrCapacityExceeded with custom bound, got %v", err)
	}
}

func TestRenderText(t *testing.T) {
	s := newTestSynth(t, WithMaxLetters(5))

	pcm, err := s.RenderText(context.Background(), "Hello, big world!")
	if err != nil {
		t.Fatalf("RenderText: %v", err)
	}

	// "hello big world" -> chunks "hello", "big", "world" plus two gaps.
	if got, want := s.Chunks("Hello, big world!"), []string{"hello", "big", "world"}; !slices.Equal(got, want) {
		t.Fatalf("Chunks = %q, want %q", got, want)
	}
	wantLetters := 5 + 1 + 3 + 1 + 5
	if len(pcm) != wantLetters*testSamples {
		t.Errorf("len = %d, want %d", len(pcm), wantLetters*testSamples)
	}

	t.Run("empty input", func(t *testing.T) {
		_, err := s.RenderText(context.Background(), "?!")
		if !errors.Is(err, ErrNothingToSynthesize) {
			t.Errorf("expected ErrNothingToSynthesize, got %v", err)
		}
	})

	t.Run("stream matches render", func(t *testing.T) {
		var streamed []int16
		calls := 0
		err := s.Stream(context.Background(), "Hello, big world!", func(chunk []int16) error {
			calls++
			streamed = append(streamed, chunk...)
			return nil
		})
		if err != nil {
			t.Fatalf("Stream: %v", err)
		}
		if calls != 3 {
			t.Errorf("emit calls = %d, want 3", calls)
		}
		if !slices.Equal(streamed, pcm) {
			t.Error("streamed samples differ from RenderText")
		}
	})

	t.Run("emit error stops the stream", func(t *testing.T) {
		stop := errors.New("client gone")
		calls := 0
		err := s.Stream(context.Background(), "hello big world", func([]int16) error {
			calls++
			return stop
		})
		if !errors.Is(err, stop) {
			t.Errorf("expected emit error, got %v", err)
		}
		if calls != 1 {
			t.Errorf("emit calls = %d, want 1", calls)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := s.RenderText(ctx, "hello"); !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})
}

func TestToneBankDeterministic(t *testing.T) {
	a, err := ToneBank(audio.DefaultFormat, LetterSamples)
	if err != nil {
		t.Fatalf("ToneBank: %v", err)
	}
	b, err := ToneBank(audio.DefaultFormat, LetterSamples)
	if err != nil {
		t.Fatalf("ToneBank: %v", err)
	}

	if a.SamplesPerLetter() != LetterSamples {
		t.Errorf("SamplesPerLetter = %d, want %d", a.SamplesPerLetter(), LetterSamples)
	}
	if got := len(a.Letters()); got != 27 {
		t.Errorf("letters = %d, want 27", got)
	}

	for _, r := range a.Letters() {
		x, _ := a.Snippet(r)
		y, _ := b.Snippet(r)
		if !slices.Equal(x, y) {
			t.Errorf("snippet %q differs between banks", r)
		}
	}

	space, _ := a.Snippet(' ')
	for _, v := range space {
		if v != 0 {
			t.Fatal("space snippet is not silent")
		}
	}

	first, _ := a.Snippet('a')
	if first[0] != 0 {
		t.Errorf("tone starts at %d, want ramp from 0", first[0])
	}
	if slices.Equal(first, mustSnippet(t, a, 'b')) {
		t.Error("'a' and 'b' share a waveform")
	}
}

func mustSnippet(t *testing.T, b *Bank, r rune) []int16 {
	t.Helper()
	s, ok := b.Snippet(r)
	if !ok {
		t.Fatalf("no snippet for %q", r)
	}
	return s
}

func TestNewBank(t *testing.T) {
	t.Run("pads to longest snippet", func(t *testing.T) {
		b, err := NewBank(map[rune][]int16{
			'a': {1, 2, 3},
			'b': {4},
		}, audio.DefaultFormat)
		if err != nil {
			t.Fatalf("NewBank: %v", err)
		}
		if b.SamplesPerLetter() != 3 {
			t.Errorf("SamplesPerLetter = %d, want 3", b.SamplesPerLetter())
		}
		if got := mustSnippet(t, b, 'b'); !slices.Equal(got, []int16{4, 0, 0}) {
			t.Errorf("snippet b = %v, want [4 0 0]", got)
		}
	})

	t.Run("rejects empty bank", func(t *testing.T) {
		if _, err := NewBank(nil, audio.DefaultFormat); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("rejects empty snippet", func(t *testing.T) {
		if _, err := NewBank(map[rune][]int16{'a': nil}, audio.DefaultFormat); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("rejects stereo format", func(t *testing.T) {
		f := audio.DefaultFormat
		f.Channels = 2
		_, err := NewBank(map[rune][]int16{'a': {1}}, f)
		if !errors.Is(err, audio.ErrFormatMismatch) {
			t.Errorf("expected ErrFormatMismatch, got %v", err)
		}
	})
}

func TestSpell(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hello world", "hello world"},
		{"Café, MIT!", "cafe mit"},
		{"M.I.T.", "m i t"},
		{"  ninety-six  ", "ninety six"},
		{"naïve résumé", "naive resume"},
		{"42", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Spell(tt.in); got != tt.want {
				t.Errorf("Spell(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
