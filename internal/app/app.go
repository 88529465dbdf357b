package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/config"
	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/gateway"
)

// Run is the application entry point. It loads configuration, selects the
// record store provider once, and serves HTTP until ctx is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("store_driver", cfg.Store.Driver),
	)

	return Serve(ctx, cfg, logger)
}

// Serve opens the data layer session and runs the HTTP server until ctx is
// canceled, then shuts down gracefully.
func Serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	session, err := gateway.Open(ctx, cfg.Store, gateway.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("open data layer: %w", err)
	}
	defer session.Close()

	if session.IsFallbackMode() {
		logger.Warn("serving fallback dataset; changes are not persisted",
			slog.String("reason", session.FallbackReason()),
		)
	}

	handler, limiter := NewHandler(cfg, session, logger)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening",
			slog.String("addr", srv.Addr),
			slog.String("provider", session.ProviderName()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	<-errCh
	return nil
}
