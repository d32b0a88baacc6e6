package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"ytdigest"
)

const shutdownTimeout = 30 * time.Second

func newServeCommand(config func() *ytdigest.Config) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the digest HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config()
			if addr != "" {
				cfg.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			svc, err := ytdigest.New(ctx, cfg)
			if err != nil {
				return err
			}

			slog.Info("starting digest server",
				slog.String("addr", cfg.Addr),
				slog.Bool("openai_key_available", cfg.HasOpenAIKey()),
				slog.Bool("youtube_key_available", cfg.HasYouTubeKey()))

			srv := &http.Server{
				Addr:              cfg.Addr,
				Handler:           svc.Handler(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			slog.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides DIGEST_ADDR)")
	return cmd
}
