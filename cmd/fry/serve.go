package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/example/go-fry-tts/internal/server"
	"github.com/example/go-fry-tts/internal/synth"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve normalization, pronunciation and letter synthesis over HTTP",
		Long: "Endpoints:\n" +
			"  GET  /health                  status and build version\n" +
			"  POST /normalize {text}        spoken form plus per-token categories\n" +
			"  GET  /pronounce?word=|text=   dictionary sounds\n" +
			"  POST /synth {text,raw,stream} spelled-out WAV\n" +
			"SIGINT or SIGTERM drains in-flight requests for --shutdown-timeout seconds.",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			// A bad manifest fails here rather than after the port is bound.
			syn, err := synth.NewFromConfig(cfg, slog.Default())
			if err != nil {
				return err
			}
			slog.Info("letter bank loaded",
				slog.String("bank", cfg.Synth.Bank),
				slog.Int("letters", len(syn.Letters())),
				slog.Int("max_letters", syn.MaxLetters()),
			)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return server.New(cfg, syn).WithLogger(slog.Default()).Start(ctx)
		},
	}

	return cmd
}
