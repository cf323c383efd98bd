// Menuboard - Restaurant Menu Administration
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuboard

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/menuboard/internal/api"
	"github.com/tomtom215/menuboard/internal/auth"
	"github.com/tomtom215/menuboard/internal/config"
	"github.com/tomtom215/menuboard/internal/logging"
	"github.com/tomtom215/menuboard/internal/menu"
	"github.com/tomtom215/menuboard/internal/metrics"
	"github.com/tomtom215/menuboard/internal/store"
	"github.com/tomtom215/menuboard/internal/supervisor"
	"github.com/tomtom215/menuboard/internal/supervisor/services"
	"github.com/tomtom215/menuboard/internal/validation"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

//nolint:gocyclo // Main initialization function with sequential setup steps
func main() {
	startTime := time.Now()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().Str("version", version).Msg("Starting Menuboard with supervisor tree")
	logging.Info().Str("config", cfg.String()).Msg("Configuration loaded")
	metrics.SetAppInfo(version)

	// Menu
	fileStore, err := store.NewFileStore(cfg.Store.Path)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize menu store")
	}
	menuStore := store.NewBreakerStore(fileStore, store.BreakerConfig{
		Name:                "menu-store",
		ConsecutiveFailures: uint32(cfg.Store.BreakerFailures), //nolint:gosec // validated >= 1
		Timeout:             cfg.Store.BreakerTimeout,
	})
	menuService := menu.NewService(menuStore, menu.Config{
		WriteRate:  cfg.Store.WriteRate,
		WriteBurst: cfg.Store.WriteBurst,
	})
	if _, err := menuService.List(context.Background()); err != nil {
		logging.Warn().Err(err).Str("path", cfg.Store.Path).Msg("Menu file is not readable yet")
	}

	// Authentication
	factory, err := auth.NewSessionStoreFactory(auth.SessionStoreType(cfg.Security.SessionStore), cfg.Security.SessionStorePath)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize session store")
	}
	defer func() {
		if err := factory.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing session store")
		}
	}()
	sessionStore := factory.CreateStore()

	signer, err := auth.NewCookieSigner(cfg.Security.SessionSecret)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize cookie signer")
	}
	sessions := auth.NewSessionManager(sessionStore, signer, &auth.SessionManagerConfig{
		SessionTTL:     cfg.Security.SessionTimeout,
		SlidingSession: true,
		CookieSecure:   cfg.Server.IsProduction(),
		CookieSameSite: http.SameSiteLaxMode,
	})

	password, err := auth.NewPasswordVerifier(cfg.Security.AdminPassword, 0)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize password verifier")
	}

	loginLimiter := auth.NewLoginLimiter(auth.NewMemoryAttemptStore(), &auth.LoginLimiterConfig{
		MaxAttempts: cfg.Security.LoginMaxAttempts,
		Window:      cfg.Security.LoginWindow,
	})

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("API rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}
	if !cfg.Server.IsProduction() {
		logging.Warn().Msg("Session cookie is sent without the Secure flag outside production")
	}

	// HTTP
	handler := api.NewHandler(api.HandlerDeps{
		Menu:      menuService,
		Items:     validation.NewItemValidator(cfg.Menu.Categories),
		Sessions:  sessions,
		Password:  password,
		Limiter:   loginLimiter,
		Security:  logging.NewSecurityLogger(),
		StartTime: startTime,
	})

	middlewareCfg := api.DefaultChiMiddlewareConfig()
	middlewareCfg.CORSAllowedOrigins = cfg.Security.CORSOrigins
	middlewareCfg.RateLimitRequests = cfg.Security.RateLimitReqs
	middlewareCfg.RateLimitWindow = cfg.Security.RateLimitWindow
	middlewareCfg.RateLimitDisabled = cfg.Security.RateLimitDisabled

	router := api.NewRouter(handler, sessions, api.RouterConfig{
		TrustProxy: cfg.Server.TrustProxy,
		Middleware: middlewareCfg,
	})

	server := &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	// Supervisor tree
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddMaintenanceService(services.NewJanitorService(cfg.Security.CleanupInterval,
		services.JanitorTask{
			Name: "expired-sessions",
			Run: func(ctx context.Context) (int, error) {
				removed, err := sessionStore.CleanupExpired(ctx)
				if err != nil {
					return 0, err
				}
				metrics.RecordSessionsExpired(removed)
				if active, err := sessionStore.Count(ctx); err == nil {
					metrics.SetActiveSessions(active)
				}
				return removed, nil
			},
		},
		services.JanitorTask{
			Name: "login-windows",
			Run:  loginLimiter.Cleanup,
		},
		services.JanitorTask{
			Name: "uptime",
			Run: func(context.Context) (int, error) {
				metrics.UpdateUptime(startTime)
				return 0, nil
			},
		},
	))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	var serveErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, waiting for supervisor to finish...")
		serveErr = <-errCh
	case serveErr = <-errCh:
	}
	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		logging.Error().Err(serveErr).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Application stopped gracefully")
}
