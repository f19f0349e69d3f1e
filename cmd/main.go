package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"bwsAPI/internal/bws"
	"bwsAPI/internal/config"
	"bwsAPI/internal/handlers"
	"bwsAPI/internal/logger"
	"bwsAPI/internal/server"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	zl, err := logger.New(cfg.ServiceName, cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	// The binary is resolved per request; a missing one is only worth a warning at startup
	if _, err := exec.LookPath(cfg.BwsBinary); err != nil {
		zl.Warn("bws binary not found", zap.String("binary", cfg.BwsBinary), zap.Error(err))
	}

	runner := bws.NewExecRunner(cfg.BwsTimeout)

	// Initialize handlers
	secretsHandler := handlers.NewSecretsHandler(runner, cfg.BwsBinary, zl)
	projectsHandler := handlers.NewProjectsHandler(runner, cfg.BwsBinary, zl)

	// Setup router
	router := server.NewRouter(server.Options{
		Logger:    zl,
		BodyLimit: cfg.HTTPBodyLimit,
	}, secretsHandler, projectsHandler)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		zl.Info("starting server", zap.String("addr", cfg.HTTPAddr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zl.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("graceful shutdown failed", zap.Error(err))
	}
}
