package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/example/go-fry-tts/internal/bench"
	"github.com/example/go-fry-tts/internal/synth"
	"github.com/example/go-fry-tts/internal/text"
	"github.com/spf13/cobra"
)

func newBenchCmd() *cobra.Command {
	var (
		input        string
		runs         int
		format       string
		rtfThreshold float64
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark normalization plus synthesis latency and realtime factor",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			if format != "table" && format != "json" {
				return fmt.Errorf("--format must be 'table' or 'json'")
			}

			cleaned, err := text.CleanInput(input)
			if err != nil {
				return fmt.Errorf("--text: %w", err)
			}

			syn, err := synth.NewFromConfig(cfg, slog.Default())
			if err != nil {
				return err
			}
			norm := text.New(text.WithLogger(slog.Default()))

			results, err := bench.Run(cmd.Context(), runs, syn.Format(), func(ctx context.Context) ([]int16, error) {
				return syn.RenderText(ctx, norm.Normalize(cleaned))
			})
			if err != nil {
				return err
			}

			stats := bench.ComputeStats(bench.Durations(results))

			switch format {
			case "json":
				if err := bench.FormatJSON(results, stats, cmd.OutOrStdout()); err != nil {
					return err
				}
			default:
				bench.FormatTable(results, stats, cmd.OutOrStdout())
			}

			return bench.CheckRTFThreshold(bench.MeanRTF(results), rtfThreshold)
		},
	}

	cmd.Flags().StringVar(&input, "text", "Dr. Smith paid $2,500 for the 3,001st MIT ticket", "Text to normalize and synthesize for each run")
	cmd.Flags().IntVar(&runs, "runs", 5, "Number of runs")
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table|json")
	cmd.Flags().Float64Var(&rtfThreshold, "rtf-threshold", 0, "Exit non-zero if mean RTF exceeds this value (0 = disabled)")

	return cmd
}
