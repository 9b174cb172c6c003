package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/example/go-fry-tts/internal/pronounce"
	"github.com/spf13/cobra"
)

func newPronounceCmd() *cobra.Command {
	var input string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "pronounce [words...]",
		Short: "Look words up in the pronunciation dictionary",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(args, input, cmd.InOrStdin())
			if err != nil {
				return err
			}

			words := pronounce.PronounceText(raw)

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(words)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, p := range words {
				sounds := "(not found)"
				if p.Found {
					parts := make([]string, len(p.Sounds))
					for i, s := range p.Sounds {
						parts[i] = string(s)
					}
					sounds = strings.Join(parts, " ")
				}
				_, _ = fmt.Fprintf(tw, "%s\t%s\n", p.Word, sounds)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&input, "text", "", "Words to look up (if empty, read args or stdin)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print results as JSON")

	return cmd
}
