// Guidance server - compares live camera frames against a reference photo and
// streams composition feedback over WebSocket.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tryangle-app/tryangle/backend/guidance/internal/config"
	"github.com/tryangle-app/tryangle/backend/guidance/internal/grpcclient"
	"github.com/tryangle-app/tryangle/backend/guidance/internal/server"
	"github.com/tryangle-app/tryangle/backend/guidance/internal/session"
	"github.com/tryangle-app/tryangle/backend/guidance/internal/stability"
)

func main() {
	// Setup structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(logger)

	cfg := config.Load()

	// Connect to vision inference gRPC server
	inference, err := grpcclient.New(cfg.InferenceAddr)
	if err != nil {
		slog.Error("failed to connect to inference server", "addr", cfg.InferenceAddr, "error", err)
		os.Exit(1)
	}
	defer func() { _ = inference.Close() }()

	// Create session engine
	engine, err := session.NewEngine(session.Options{
		Visibility:      cfg.VisibilityThreshold,
		Mirror:          cfg.MirrorFrontCamera,
		Language:        cfg.Language,
		DistanceScaling: cfg.HeadroomDistScaling,
		Stability: stability.Config{
			AppearFrames:     cfg.AppearFrames,
			DisappearFrames:  cfg.DisappearFrames,
			MaxVisible:       cfg.MaxVisibleFeedback,
			PerfectScore:     cfg.PerfectScore,
			PerfectFrames:    cfg.PerfectFrames,
			CompletedDisplay: time.Duration(cfg.CompletedDisplayMS) * time.Millisecond,
		},
		Logger: logger,
	})
	if err != nil {
		slog.Error("failed to create session engine", "error", err)
		os.Exit(1)
	}

	// Create HTTP/WebSocket server
	srv := server.New(engine, inference, cfg)

	httpServer := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      srv.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("guidance server starting", "http", cfg.HTTPAddr, "inference", cfg.InferenceAddr)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("http server error", "error", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	slog.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("http shutdown error", "error", err)
	}

	slog.Info("shutdown complete")
}
