// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/paper-dashboard/internal/dashboard"
	"github.com/pdiddy/paper-dashboard/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard tables as a JSON API",
	Long: `Serve starts an HTTP server exposing the dashboard over /api:
/health, /options, /dashboard, /records, and /export. Every request
recomputes its tables from the in-memory corpus. The server shuts down
gracefully on SIGINT or SIGTERM.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default from config)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	scfg := cfg.Server
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		scfg.Addr = addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Generate up front so the first request does not pay for it.
	records := memo.GetOrCreate(cfg.Corpus.Seed)
	logger.Info("corpus ready", zap.Int("records", len(records)), zap.Int64("seed", cfg.Corpus.Seed))

	svc := dashboard.NewService(memo.Seeded(cfg.Corpus.Seed), cfg, logger)
	return server.New(svc, scfg, logger).Run(ctx)
}
