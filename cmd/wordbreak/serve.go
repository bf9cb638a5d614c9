package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kumarlokesh/wordbreak/internal/api"
	"github.com/spf13/cobra"
)

func newServeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve lookups and segmentation over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := a.loadDictionary()
			if err != nil {
				return err
			}

			server := api.NewServer(a.cfg.Server.Addr(), dict, a.newSegmenter(dict),
				api.WithLogger(a.logger),
				api.WithWorkerCount(a.cfg.Batch.Workers),
			)

			serverErrors := make(chan error, 1)
			go func() {
				serverErrors <- server.Start()
			}()

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(stop)

			select {
			case err := <-serverErrors:
				return err
			case sig := <-stop:
				a.logger.Info().Str("signal", sig.String()).Msg("Shutting down server")
			}

			ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
			defer cancel()

			if err := server.Shutdown(ctx); err != nil {
				return fmt.Errorf("server forced to shutdown: %w", err)
			}
			if err := <-serverErrors; err != nil {
				return err
			}
			a.logger.Info().Msg("Server stopped")
			return nil
		},
	}
}
