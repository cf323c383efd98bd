// Menuboard - Restaurant Menu Administration
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuboard

package api

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/tomtom215/menuboard/internal/logging"
	"github.com/tomtom215/menuboard/internal/metrics"
)

// ChiMiddlewareConfig holds configuration for Chi middleware factories.
type ChiMiddlewareConfig struct {
	// CORSAllowedOrigins lists origins allowed to call the API from a browser.
	// Empty disables CORS handling entirely, leaving only same-origin access.
	CORSAllowedOrigins []string
	CORSMaxAge         int // seconds

	RateLimitRequests int
	RateLimitWindow   time.Duration
	RateLimitDisabled bool
}

// DefaultChiMiddlewareConfig returns the default configuration: no CORS and
// 100 requests per client per 15 minutes.
func DefaultChiMiddlewareConfig() *ChiMiddlewareConfig {
	return &ChiMiddlewareConfig{
		CORSAllowedOrigins: []string{},
		CORSMaxAge:         86400,
		RateLimitRequests:  100,
		RateLimitWindow:    15 * time.Minute,
	}
}

// ChiMiddleware builds the chi-native middleware used by the router.
type ChiMiddleware struct {
	config *ChiMiddlewareConfig
}

// NewChiMiddleware creates a new Chi middleware factory with the given configuration.
func NewChiMiddleware(config *ChiMiddlewareConfig) *ChiMiddleware {
	if config == nil {
		config = DefaultChiMiddlewareConfig()
	}
	return &ChiMiddleware{config: config}
}

// CORS returns the go-chi/cors middleware, or a pass-through when no origins
// are configured. go-chi/cors treats an empty origin list as "allow all".
func (m *ChiMiddleware) CORS() func(http.Handler) http.Handler {
	if len(m.config.CORSAllowedOrigins) == 0 {
		return passThrough
	}

	wildcard := false
	for _, o := range m.config.CORSAllowedOrigins {
		if o == "*" {
			wildcard = true
		}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   m.config.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "Retry-After"},
		AllowCredentials: !wildcard,
		MaxAge:           m.config.CORSMaxAge,
	})
}

// RateLimit returns the per-client API rate limiter. Rejections get the JSON
// error envelope and are counted under the "api" limiter label.
func (m *ChiMiddleware) RateLimit() func(http.Handler) http.Handler {
	if m.config.RateLimitDisabled {
		return passThrough
	}

	return httprate.Limit(
		m.config.RateLimitRequests,
		m.config.RateLimitWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			metrics.RecordRateLimitHit("api")
			logging.Ctx(r.Context()).Warn().
				Str("ip", clientIP(r)).
				Str("path", r.URL.Path).
				Msg("API rate limit exceeded")
			respondError(w, http.StatusTooManyRequests, "Too many requests, please try again later", nil)
		}),
	)
}

// chiMiddleware adapts http.HandlerFunc middleware to Chi's func(http.Handler) http.Handler.
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

func passThrough(next http.Handler) http.Handler {
	return next
}

// Recoverer turns a panic into a 500 envelope. The panic value and stack are
// logged, never returned.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			logging.Ctx(r.Context()).Error().
				Interface("panic", rec).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Bytes("stack", debug.Stack()).
				Msg("Recovered from panic")
			respondError(w, http.StatusInternalServerError, "Internal server error", nil)
		}()
		next.ServeHTTP(w, r)
	})
}
