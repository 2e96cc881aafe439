package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "npofeed",
		Short: "npofeed — RSS feed of new and recent NPO programs",
		Long:  "Scrapes the NPO listing page, renders an RSS 2.0 feed, and optionally serves it over HTTP with periodic refresh.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.AddCommand(
		onceCmd(),
		serveCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
