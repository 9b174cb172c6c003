package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/example/go-fry-tts/internal/text"
	"github.com/spf13/cobra"
)

func newTagCmd() *cobra.Command {
	var input string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "tag [text...]",
		Short: "Show the category assigned to each token",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(args, input, cmd.InOrStdin())
			if err != nil {
				return err
			}

			cleaned, err := text.CleanInput(raw)
			if err != nil {
				return err
			}

			tokens := text.Tag(cleaned)

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(tokens)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, tok := range tokens {
				_, _ = fmt.Fprintf(tw, "%s\t%s\n", tok.Raw, tok.Category)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&input, "text", "", "Text to tag (if empty, read args or stdin)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print tokens as JSON")

	return cmd
}
