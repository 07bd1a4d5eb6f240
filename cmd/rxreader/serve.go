package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"prescription-reader/internal/adapters/auth/jwtauth"
	"prescription-reader/internal/config"
	"prescription-reader/internal/platform/logger"
	"prescription-reader/internal/ports/auth"
	"prescription-reader/internal/router"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Levanta la API HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context())
		},
	}
}

func runServer(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	rules, err := cfg.LoadRules()
	if err != nil {
		log.Error("load rules failed", map[string]any{"file": cfg.RulesFile, "error": err.Error()})
		return err
	}

	// sin secret => modo dev (X-Debug-User-ID)
	var verifier auth.AuthVerifier
	if cfg.AuthEnabled() {
		verifier = jwtauth.NewVerifier(jwtauth.Config{
			Secret:   cfg.AuthJWTSecret,
			Issuer:   cfg.AuthIssuer,
			Audience: cfg.AuthAudience,
			Leeway:   30 * time.Second,
		})
	}

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.NewRouter(router.Options{
			AuthVerifier:  verifier,
			RequireAuth:   cfg.AuthEnabled(),
			Logger:        log,
			Rules:         &rules,
			MaxInputBytes: cfg.MaxInputBytes,
			CORSOrigins:   cfg.CORSOrigins,
		}),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{
			"addr":         srv.Addr,
			"env":          cfg.Env,
			"auth_enabled": cfg.AuthEnabled(),
			"rules_file":   cfg.RulesFile,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server error", map[string]any{"error": err.Error()})
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down server", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", map[string]any{"error": err.Error()})
		return err
	}
	log.Info("server stopped", nil)
	return nil
}
