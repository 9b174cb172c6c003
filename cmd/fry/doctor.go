package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/example/go-fry-tts/internal/config"
	"github.com/example/go-fry-tts/internal/doctor"
	"github.com/example/go-fry-tts/internal/pronounce"
	"github.com/example/go-fry-tts/internal/synth"
	"github.com/example/go-fry-tts/internal/text"
	"github.com/spf13/cobra"
)

// voicedLetters is what Spell can emit and so what every bank must cover.
const voicedLetters = "abcdefghijklmnopqrstuvwxyz "

func newDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the embedded tables and the configured letter bank",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "letter bank: %s\n", cfg.Synth.Bank)

			dcfg := doctor.Config{
				Abbreviations:   func() int { return text.DefaultAbbreviations().Len() },
				Dictionary:      func() int { return pronounce.Default().Len() },
				RequiredLetters: voicedLetters,
				LetterBank: func() ([]rune, error) {
					syn, err := synth.NewFromConfig(cfg, slog.Default())
					if err != nil {
						return nil, err
					}
					return syn.Letters(), nil
				},
			}
			if cfg.Synth.Bank == config.BankManifest && cfg.Paths.LetterBank != "" {
				dcfg.Files = []string{cfg.Paths.LetterBank}
			}

			result := doctor.Run(dcfg, out)

			if result.Failed() {
				for _, f := range result.Failures() {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "FAIL: %s\n", f)
				}

				return errors.New("doctor checks failed")
			}

			_, _ = fmt.Fprintln(out, "doctor checks passed")

			return nil
		},
	}

	return cmd
}
