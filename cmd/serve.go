package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/desertthunder/insightboard/internal/repositories"
	"github.com/desertthunder/insightboard/internal/server"
	"github.com/desertthunder/insightboard/internal/shared"
	"github.com/urfave/cli/v3"
)

const shutdownTimeout = 5 * time.Second

// Serve runs the dashboard API until the context is cancelled or the process is interrupted.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	if err := r.loadConfig(cmd); err != nil {
		return err
	}
	if host := cmd.String("host"); host != "" {
		r.config.Server.Host = host
	}
	if cmd.IsSet("port") {
		r.config.Server.Port = int(cmd.Int("port"))
	}

	fetcher, err := r.videoFetcher(ctx)
	if err != nil {
		return err
	}
	kv, err := r.store()
	if err != nil {
		return err
	}

	router := server.NewAPI(server.APIOpts{
		Fetcher:    fetcher,
		Users:      repositories.NewUserStore(kv, r.logger),
		Videos:     repositories.NewVideoStore(kv, r.logger),
		Sessions:   kv,
		CookieName: r.config.Session.CookieName,
		Logger:     r.logger,
	})

	listener, err := net.Listen("tcp", r.config.Server.Addr())
	if err != nil {
		return fmt.Errorf("%w: failed to listen on %s: %v", shared.ErrServiceUnavailable, r.config.Server.Addr(), err)
	}
	addr := listener.Addr().String()

	httpServer := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		r.logger.Info("starting server", "addr", addr)
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
	}()

	r.writePlain("✓ InsightBoard API listening on http://%s\n", addr)

	if cmd.Bool("open") {
		if err := shared.OpenBrowser("http://" + addr + "/health"); err != nil {
			r.logger.Warnf("failed to open browser automatically %v", err)
		}
	}

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case <-sigCtx.Done():
	}

	r.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		r.logger.Warn("error shutting down server", "error", err)
		return err
	}

	return nil
}
