package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dilluhn/npo-rss-feed/internal/app"
	"github.com/dilluhn/npo-rss-feed/internal/config"
	"github.com/dilluhn/npo-rss-feed/internal/logging"
)

func serveCmd() *cobra.Command {
	var addrFlag string
	var intervalFlag string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the feed over HTTP and refresh it on an interval",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if addrFlag != "" {
				cfg.Server.Addr = addrFlag
			}
			if intervalFlag != "" {
				cfg.Scheduler.Interval = intervalFlag
			}
			logger := logging.New(cfg.Logging.Level)

			application, err := app.New(cfg, logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := application.Serve(ctx); err != nil {
				logger.Error("server stopped", "error", err)
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&addrFlag, "addr", "a", "", "Listen address (overrides config)")
	cmd.Flags().StringVarP(&intervalFlag, "interval", "i", "", "Refresh interval, e.g. 30m (overrides config)")
	return cmd
}
