// Menuboard - Restaurant Menu Administration
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuboard

// Package logging provides centralized zerolog-based structured logging for Menuboard.
//
// The package owns a single global zerolog logger that every other package
// writes through. Output is JSON by default and human-readable console output
// when LOG_FORMAT=console.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Str("path", cfg.Store.Path).Msg("Menu store ready")
//	logging.Error().Err(err).Msg("Failed to write menu file")
//
//	// Inside a request handler (request_id and correlation_id attached)
//	logging.Ctx(r.Context()).Warn().Int("item_id", id).Msg("Menu item not found")
//
// # Configuration
//
// Environment Variables (read by internal/config):
//
//	LOG_LEVEL   - trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - json, console (default: json)
//	LOG_CALLER  - true, false (default: false)
//
// # Components
//
//   - logger.go: global logger, Init, level helpers
//   - context.go: request/correlation IDs carried in context.Context
//   - slog_adapter.go: slog.Handler backed by zerolog (used by sutureslog)
//   - security.go: authentication event logging with sanitized identifiers
//
// Always terminate event chains with Msg() or Send(); an unterminated
// chain is never written.
package logging
