// Package main runs the DeskPilot server and its one-shot commands.
package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/frudas24/deskpilot/internal/app"
	"github.com/frudas24/deskpilot/internal/config"
	"github.com/frudas24/deskpilot/internal/logging"
	"github.com/frudas24/deskpilot/internal/session"
)

// newServeCmd starts the HTTP and websocket command server.
func newServeCmd() *cobra.Command {
	var staticDir string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the command API and operator page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), staticDir)
		},
	}
	cmd.Flags().StringVar(&staticDir, "static", "", "serve the operator page from this directory instead of the embedded copy")
	return cmd
}

// bootstrap loads config, builds the logger, and wires a started App.
func bootstrap() (*app.App, config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, config.Config{}, nil, err
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, config.Config{}, nil, err
	}
	a, err := app.NewSystem(cfg, session.New(cfg.UIPassword), logger)
	if err != nil {
		return nil, config.Config{}, nil, err
	}
	if err := a.Start(); err != nil {
		return nil, config.Config{}, nil, err
	}
	return a, cfg, logger, nil
}

// run wires the application and blocks until shutdown.
func run(parent context.Context, staticDir string) error {
	a, cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	logStartup(logger, cfg)

	mux := http.NewServeMux()
	a.RegisterRoutes(mux, staticDir)
	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt)
	defer stop()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// logStartup prints startup checks and connection info.
func logStartup(logger *zap.Logger, cfg config.Config) {
	logger.Info("DeskPilot starting",
		zap.String("version", version),
		zap.String("gestureMode", string(cfg.GestureMode)),
		zap.Bool("releaseOnFailure", cfg.ReleaseOnFailure),
		zap.String("captureBackend", cfg.CaptureBackend))
	logEnvStatus(logger, cfg)
	if cfg.CaptureBackend == config.BackendTool {
		logToolStatus(logger, cfg.CaptureTool)
	}
	logListenStatus(logger, cfg.ListenAddr)
}

// logEnvStatus reports whether the loaded .env file exists and whether auth is on.
func logEnvStatus(logger *zap.Logger, cfg config.Config) {
	logger.Info("env check", zap.String("path", cfg.EnvFile), zap.Bool("found", fileExists(cfg.EnvFile)))
	if cfg.UIPassword == "" {
		logger.Warn("UI_PASSWORD is empty; authentication disabled")
	}
}

// logToolStatus reports whether the screenshot binary is discoverable.
func logToolStatus(logger *zap.Logger, path string) {
	if filepath.IsAbs(path) {
		if fileExists(path) {
			logger.Info("capture tool check: ok", zap.String("path", path))
			return
		}
		logger.Warn("capture tool check: missing", zap.String("path", path))
		return
	}
	found, err := exec.LookPath(path)
	switch {
	case err == nil:
		logger.Info("capture tool check: ok", zap.String("path", found))
	case errors.Is(err, exec.ErrDot):
		logger.Warn("capture tool check: found relative to current dir; use absolute path", zap.String("path", path))
	default:
		logger.Warn("capture tool check: missing", zap.String("path", path), zap.Error(err))
	}
}

// logListenStatus reports the listen address and a local URL helper.
func logListenStatus(logger *zap.Logger, addr string) {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		logger.Info("listen addr", zap.String("addr", addr))
		return
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	logger.Info("listen addr",
		zap.String("addr", addr),
		zap.String("url", "http://"+net.JoinHostPort(host, port)))
}

// fileExists reports whether a path exists and is a file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
