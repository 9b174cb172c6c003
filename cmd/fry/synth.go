package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/example/go-fry-tts/internal/audio"
	"github.com/example/go-fry-tts/internal/synth"
	"github.com/example/go-fry-tts/internal/text"
	"github.com/spf13/cobra"
)

func newSynthCmd() *cobra.Command {
	var input string
	var out string
	var raw bool

	cmd := &cobra.Command{
		Use:   "synth [text...]",
		Short: "Normalize text and spell it out letter by letter to WAV",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			inputText, err := readInput(args, input, cmd.InOrStdin())
			if err != nil {
				return err
			}

			cleaned, err := text.CleanInput(inputText)
			if err != nil {
				return err
			}
			if !raw {
				cleaned = text.New(text.WithLogger(slog.Default())).Normalize(cleaned)
			}

			syn, err := synth.NewFromConfig(cfg, slog.Default())
			if err != nil {
				return err
			}

			pcm, err := syn.RenderText(cmd.Context(), cleaned)
			if err != nil {
				return mapSynthError(err)
			}

			wav, err := audio.EncodePCM16(pcm, syn.Format())
			if err != nil {
				return err
			}

			slog.Debug("synthesis complete",
				slog.Int("samples", len(pcm)),
				slog.Int("wav_bytes", len(wav)),
				slog.String("out", out),
			)

			return writeSynthOutput(out, wav, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&input, "text", "", "Text to synthesize (if empty, read args or stdin)")
	cmd.Flags().StringVar(&out, "out", "out.wav", "Output WAV path ('-' for stdout)")
	cmd.Flags().BoolVar(&raw, "raw", false, "Spell the text as given, without normalization")

	return cmd
}

func writeSynthOutput(outPath string, wavData []byte, stdout io.Writer) error {
	if outPath == "-" {
		if stdout == nil {
			return fmt.Errorf("stdout writer is nil")
		}
		_, err := stdout.Write(wavData)
		return err
	}
	return os.WriteFile(outPath, wavData, 0o644)
}

func mapSynthError(err error) error {
	switch {
	case errors.Is(err, synth.ErrNothingToSynthesize):
		return fmt.Errorf("synth failed: input has no letters to spell: %w", err)
	case errors.Is(err, synth.ErrUnsupportedLetter):
		return fmt.Errorf("synth failed: letter bank is missing a recording; check --paths-letter-bank: %w", err)
	default:
		return err
	}
}
