/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/josephgoksu/todo/internal/config"
	"github.com/josephgoksu/todo/internal/logger"
	"github.com/josephgoksu/todo/internal/server"
	"github.com/josephgoksu/todo/internal/telemetry"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the task store over HTTP",
	Long: `Start a JSON HTTP API over the task store.

Routes:
  GET    /api/health
  GET    /api/tasks
  POST   /api/tasks              {"description": "..."}
  GET    /api/tasks/{id}
  POST   /api/tasks/{id}/complete
  DELETE /api/tasks/{id}`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", config.DefaultServerAddr, "listen address")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	ts, err := openStoreFor(telemetry.SurfaceHTTP)
	if err != nil {
		return fmt.Errorf("open task store: %w", err)
	}
	defer func() { _ = ts.Close() }()

	// Request logs are useful without --verbose.
	srvLogger := appLogger
	if !isVerbose() {
		srvLogger = logger.NewWithLevel(cmd.ErrOrStderr(), slog.LevelInfo)
	}

	srv := server.New(ts, server.Config{
		Addr:           cfg.Server.Addr,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Logger:         srvLogger,
	})

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup
	errChan := make(chan error, 1)
	srv.Start(&wg, errChan)
	telemetryClient.Track(telemetry.EventServerStarted, telemetry.Properties{"backend": cfg.Data.Backend})

	if !isQuiet() {
		fmt.Fprintf(cmd.OutOrStdout(), "Serving %s on http://%s (Ctrl+C to stop)\n", ts.Location(), srv.Addr())
	}

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errChan:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		LogError("server shutdown", err)
	}
	wg.Wait()
	return runErr
}
