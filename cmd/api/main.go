// Package main is the entry point for the evapcook API server.
//
// It loads configuration, constructs the two estimation strategies with the
// configured constants, builds the HTTP server with the core chassis
// (middleware, routing, health check), and listens for requests. Graceful
// shutdown is handled via OS signal interception (SIGINT, SIGTERM).
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"evapcook/internal/api/handlers"
	"evapcook/internal/config"
	"evapcook/internal/core"
	"evapcook/internal/estimator"
	"evapcook/internal/types"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// run encapsulates the startup lifecycle so that main() can cleanly exit on error.
func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logger := newLogger(cfg.LogLevel)
	logger.Info("evapcook API starting",
		"environment", cfg.Environment,
		"default_model", cfg.Estimator.DefaultModel,
		"port", cfg.Server.Port,
	)

	srv, err := core.NewServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	// Build the strategies from the configured constants. Both variants are
	// always registered; the request (or the configured default) selects one.
	strategies := []estimator.Strategy{
		estimator.NewSingleRate(estimator.SingleRateConfig{
			BaseRate:        cfg.Estimator.BaseRate,
			HeatingFraction: cfg.Estimator.HeatingFraction,
			MinutesPerLiter: cfg.Estimator.MinutesPerLiter,
		}),
		estimator.NewDualBound(estimator.DualBoundConfig{
			SpecificHeatJPerGC: cfg.Estimator.SpecificHeatJPerGC,
			LatentHeatJPerG:    cfg.Estimator.LatentHeatJPerG,
			InitialTempC:       cfg.Estimator.InitialTempC,
			HeaterPowerW:       cfg.Estimator.HeaterPowerW,
			HeaterEfficiency:   cfg.Estimator.HeaterEfficiency,
		}),
	}

	estimateHandler := handlers.NewEstimateHandler(
		strategies,
		types.ModelVariant(cfg.Estimator.DefaultModel),
		srv.Validator,
		logger,
	)
	srv.V1RouteRegistrars = append(srv.V1RouteRegistrars, func(r chi.Router) {
		estimateHandler.RegisterRoutes(r)
	})

	srv.MountRoutes()

	return runHTTPServer(srv, cfg, logger)
}

// runHTTPServer starts the server in standard HTTP mode with graceful shutdown.
func runHTTPServer(srv *core.Server, cfg *config.Config, logger *slog.Logger) error {
	addr := ":" + cfg.Server.Port

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serverErr := make(chan error, 1)

	go func() {
		logger.Info("HTTP server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-shutdown:
		logger.Info("shutdown signal received", "signal", sig.String())
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	logger.Info("initiating graceful shutdown")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("server stopped cleanly")
	return nil
}

// newLogger creates a structured slog.Logger configured for the given log level.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: lvl,
	})
	return slog.New(handler)
}
