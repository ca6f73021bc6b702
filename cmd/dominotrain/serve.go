package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	dominotrain "github.com/jml312/domino-train"
	"github.com/jml312/domino-train/internal/cli"
	httpAdapter "github.com/jml312/domino-train/pkg/adapters/http"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Exposes the solver, the puzzle library and the result cache as a JSON API over HTTP.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := cfg.HTTP.Addr
		if cmd.Flags().Changed("addr") {
			addr, _ = cmd.Flags().GetString("addr")
		}

		srv := httpAdapter.NewServer(nil,
			httpAdapter.WithLogger(logger),
			httpAdapter.WithVersion(dominotrain.Version),
			httpAdapter.WithMaxBodyBytes(cfg.HTTP.MaxBodyBytes),
		)

		rt, err := newServerRuntime(cmd, srv.Hooks())
		if err != nil {
			return err
		}
		defer rt.Close()

		srv.Solver = rt.Solver
		srv.Library = rt.Library
		srv.Store = rt.Store
		httpAdapter.WithMetricsHandler(promhttp.HandlerFor(rt.Registry, promhttp.HandlerOpts{}))(srv)

		httpServer := &http.Server{
			Addr:              addr,
			Handler:           srv.Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("Starting dominotrain server", "address", addr, "library", rt.Config.Library, "cache", rt.Config.Cache.Backend)
			serverErrors <- httpServer.ListenAndServe()
		}()

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Stop()

		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("server error: %w", err)

		case <-ctx.Done():
			logger.Info("Start shutdown", "signal", ctx.Signal())

			// Give outstanding requests a deadline for completion.
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				_ = httpServer.Close()
				return fmt.Errorf("graceful shutdown did not complete in %v: %w", 5*time.Second, err)
			}
			logger.Info("dominotrain server stopped gracefully")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	addSolverFlags(serveCmd)
	serveCmd.Flags().String("addr", ":8080", "Address to listen on (overrides http.addr)")
}
