package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/philipparndt/stlquote/internal/server"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP quoting API",
	Long: `Run the HTTP quoting API.

  POST /v1/summary          geometry summary of the uploaded STL
  POST /v1/quote?material=  summary plus price quote
  GET  /v1/materials        configured price list
  GET  /metrics             Prometheus metrics`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if serveAddr != "" {
			cfg.Server.Addr = serveAddr
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return server.New(cfg, logger).Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides the configured one)")
}
