package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ytdigest"
)

func newHealthCommand(config func() *ytdigest.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Report which API credentials are configured",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "OpenAI key:  %s\n", availability(cfg.HasOpenAIKey()))
			fmt.Fprintf(out, "YouTube key: %s\n", availability(cfg.HasYouTubeKey()))
			return nil
		},
	}
}

func availability(ok bool) string {
	if ok {
		return "available"
	}
	return "missing"
}
