// Menuboard - Restaurant Menu Administration
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuboard

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/menuboard/internal/auth"
	"github.com/tomtom215/menuboard/internal/middleware"
)

// RouterConfig holds routing options.
type RouterConfig struct {
	// TrustProxy enables chi's RealIP so forwarded client addresses become
	// the rate-limit identity. Leave off unless a proxy sets these headers.
	TrustProxy bool

	Middleware *ChiMiddlewareConfig
}

// Router wires handlers and middleware into a chi router.
type Router struct {
	handler       *Handler
	sessions      *auth.SessionManager
	config        RouterConfig
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a Router.
func NewRouter(handler *Handler, sessions *auth.SessionManager, config RouterConfig) *Router {
	return &Router{
		handler:       handler,
		sessions:      sessions,
		config:        config,
		chiMiddleware: NewChiMiddleware(config.Middleware),
	}
}

// SetupChi builds the HTTP handler.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()
	h := router.handler

	// Global middleware, outermost first.
	r.Use(chiMiddleware(middleware.RequestID))
	if router.config.TrustProxy {
		r.Use(chimiddleware.RealIP)
	}
	r.Use(chiMiddleware(middleware.PrometheusMetrics))
	r.Use(Recoverer)                   // inside metrics: recovered panics are recorded as 500
	r.Use(router.chiMiddleware.CORS()) // must see OPTIONS preflight before routing
	r.Use(chiMiddleware(middleware.SecurityHeaders))

	// Set before any sub-router is mounted so they inherit the JSON envelopes.
	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	r.Get("/health", h.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())

		r.With(chiMiddleware(middleware.Compression)).Get("/data.json", h.PublicMenu)

		r.Route("/api/auth", func(r chi.Router) {
			r.Post("/login", h.Login)
			r.Post("/logout", h.Logout)
			r.Get("/status", h.Status)
		})

		r.Route("/api/menu", func(r chi.Router) {
			r.Use(router.sessions.RequireAuth)

			r.With(chiMiddleware(middleware.Compression)).Get("/", h.ListMenu)
			r.Post("/", h.CreateItem)
			r.Put("/{id}", h.UpdateItem)
			r.Delete("/{id}", h.DeleteItem)
		})
	})

	return r
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	respondError(w, http.StatusNotFound, "Not found", nil)
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	respondError(w, http.StatusMethodNotAllowed, "Method not allowed", nil)
}
