package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"ytdigest"
)

func newRootCommand() *cobra.Command {
	var cfg *ytdigest.Config

	rootCmd := &cobra.Command{
		Use:   "ytdigest",
		Short: "Summarize recent YouTube discussion about a topic",
		Long: `ytdigest searches YouTube for recent podcasts, interviews and news about a
topic, transcribes each result and summarizes it.

Configuration is read from the environment and an optional .env file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := ytdigest.LoadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			cfg = loaded
			setupLogging(cfg)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	config := func() *ytdigest.Config { return cfg }
	rootCmd.AddCommand(newServeCommand(config))
	rootCmd.AddCommand(newDigestCommand(config))
	rootCmd.AddCommand(newHealthCommand(config))

	return rootCmd
}

func setupLogging(cfg *ytdigest.Config) {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})
	slog.SetDefault(slog.New(handler))
}
