package main

import (
	"fmt"
	"log/slog"

	"github.com/example/go-fry-tts/internal/text"
	"github.com/spf13/cobra"
)

func newNormalizeCmd() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "normalize [text...]",
		Short: "Rewrite numbers, symbols and abbreviations into speakable words",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(args, input, cmd.InOrStdin())
			if err != nil {
				return err
			}

			cleaned, err := text.CleanInput(raw)
			if err != nil {
				return err
			}

			n := text.New(text.WithLogger(slog.Default()))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), n.Normalize(cleaned))
			return err
		},
	}

	cmd.Flags().StringVar(&input, "text", "", "Text to normalize (if empty, read args or stdin)")

	return cmd
}
