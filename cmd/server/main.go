package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/acme/autocert"
	"vinr.eu/launchpad/internal/config"
	"vinr.eu/launchpad/internal/logger"
	"vinr.eu/launchpad/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Loaded config", "config", cfg.String())

	if cfg.Mode == config.ModeServer {
		gin.SetMode(gin.ReleaseMode)
	}
	router := server.NewRouter(server.NewServer(), cfg.AllowedOrigins)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	if cfg.TLSEnabled() {
		runTLS(router, cfg, quit)
		return
	}

	srv := &http.Server{
		Handler: router,
		Addr:    cfg.ListenAddr,
	}
	go func() {
		slog.Info("Listening", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Failed to listen", "error", err)
			os.Exit(1)
		}
	}()
	<-quit
	slog.Info("Shutdown Server ...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Failed to shutdown server", "error", err)
	}
	slog.Info("Server exiting")
}

// runTLS serves on :443 with certificates from Let's Encrypt. autotls owns
// the listeners, so shutdown here just stops the process.
func runTLS(router http.Handler, cfg *config.Config, quit <-chan os.Signal) {
	m := &autocert.Manager{
		Prompt:     autocert.AcceptTOS,
		HostPolicy: autocert.HostWhitelist(cfg.TLSDomains...),
		Cache:      autocert.DirCache(cfg.TLSCacheDir),
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("Listening with autotls", "domains", cfg.TLSDomains, "cache", cfg.TLSCacheDir)
		errCh <- autotls.RunWithManager(router, m)
	}()
	select {
	case err := <-errCh:
		slog.Error("Failed to serve TLS", "error", err)
		os.Exit(1)
	case <-quit:
		slog.Info("Server exiting")
	}
}
