package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/dilluhn/npo-rss-feed/internal/app"
	"github.com/dilluhn/npo-rss-feed/internal/config"
	"github.com/dilluhn/npo-rss-feed/internal/logging"
)

func onceCmd() *cobra.Command {
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "once",
		Short: "Run a single cycle and write the feed file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if outputFlag != "" {
				cfg.Output.File = outputFlag
			}
			logger := logging.New(cfg.Logging.Level)

			application, err := app.New(cfg, logger)
			if err != nil {
				return err
			}

			if err := application.RunOnce(context.Background()); err != nil {
				logger.Error("cycle failed", "error", err)
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Feed output file (overrides config)")
	return cmd
}
