package synth

import (
	"fmt"
	"log/slog"

	"github.com/example/go-fry-tts/internal/audio"
	"github.com/example/go-fry-tts/internal/config"
)

// NewFromConfig builds the letter bank selected by cfg and wraps it in a
// Synthesizer. The tone bank needs no files; the manifest bank reads the
// recordings listed at cfg.Paths.LetterBank.
func NewFromConfig(cfg config.Config, log *slog.Logger) (*Synthesizer, error) {
	if log == nil {
		log = slog.Default()
	}

	f := audio.DefaultFormat
	if cfg.Synth.SampleRate > 0 {
		f.SampleRate = cfg.Synth.SampleRate
	}

	bankKind, err := config.NormalizeBank(cfg.Synth.Bank)
	if err != nil {
		return nil, err
	}

	var bank *Bank
	switch bankKind {
	case config.BankManifest:
		if cfg.Paths.LetterBank == "" {
			return nil, fmt.Errorf("letter bank %q requires --paths-letter-bank", bankKind)
		}
		bank, err = LoadBank(cfg.Paths.LetterBank, f)
	default:
		bank, err = ToneBank(f, LetterSamples*f.SampleRate/audio.DefaultFormat.SampleRate)
	}
	if err != nil {
		return nil, fmt.Errorf("load letter bank: %w", err)
	}

	log.Debug("letter bank ready",
		slog.String("bank", bankKind),
		slog.Int("letters", len(bank.Letters())),
		slog.Int("samples_per_letter", bank.SamplesPerLetter()),
		slog.Int("sample_rate", f.SampleRate),
	)

	opts := []Option{WithLogger(log)}
	if cfg.Synth.MaxLetters > 0 {
		opts = append(opts, WithMaxLetters(cfg.Synth.MaxLetters))
	}
	return New(bank, opts...)
}
