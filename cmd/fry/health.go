package main

import (
	"context"
	"fmt"
	"time"

	"github.com/example/go-fry-tts/internal/server"
	"github.com/spf13/cobra"
)

func newHealthCmd() *cobra.Command {
	var (
		addr    string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Ask a running fry server whether it is up",
		Long: "Query /health on a fry server and print the version it reports.\n" +
			"The address defaults to server.listen_addr; a bare \":port\" probes localhost.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.ListenAddr
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			h, err := server.ProbeHTTP(ctx, addr)
			if err != nil {
				return fmt.Errorf("fry server at %s: %w", addr, err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s (fry %s at %s)\n", h.Status, h.Version, addr)
			return err
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "fry server address (default server.listen_addr)")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "Give up after this long")

	return cmd
}
