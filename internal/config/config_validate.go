// Menuboard - Restaurant Menu Administration
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuboard

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/menuboard/internal/logging"
)

// Environment names.
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// MinProductionSecretLength is the minimum SESSION_SECRET length in production.
const MinProductionSecretLength = 32

// maxAdminPasswordBytes is the bcrypt input limit.
const maxAdminPasswordBytes = 72

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateStore(); err != nil {
		return err
	}
	if err := c.validateMenu(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	switch c.Server.Environment {
	case EnvDevelopment, EnvStaging, EnvProduction:
		return nil
	default:
		return fmt.Errorf("ENVIRONMENT must be one of development, staging, production, got %q", c.Server.Environment)
	}
}

func (c *Config) validateStore() error {
	if strings.TrimSpace(c.Store.Path) == "" {
		return fmt.Errorf("DATA_FILE cannot be empty")
	}
	if c.Store.WriteRate > 0 && c.Store.WriteBurst < 1 {
		return fmt.Errorf("STORE_WRITE_BURST must be at least 1 when STORE_WRITE_RATE is set")
	}
	if c.Store.BreakerFailures < 1 {
		return fmt.Errorf("STORE_BREAKER_FAILURES must be at least 1, got %d", c.Store.BreakerFailures)
	}
	if c.Store.BreakerTimeout < time.Second {
		return fmt.Errorf("STORE_BREAKER_TIMEOUT must be at least 1s, got %s", c.Store.BreakerTimeout)
	}
	return nil
}

func (c *Config) validateMenu() error {
	if len(c.Menu.Categories) == 0 {
		return fmt.Errorf("MENU_CATEGORIES must list at least one category")
	}
	seen := make(map[string]struct{}, len(c.Menu.Categories))
	for _, cat := range c.Menu.Categories {
		key := strings.ToLower(strings.TrimSpace(cat))
		if key == "" {
			return fmt.Errorf("MENU_CATEGORIES contains an empty category")
		}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("MENU_CATEGORIES contains duplicate category %q", cat)
		}
		seen[key] = struct{}{}
	}
	return nil
}

func (c *Config) validateSecurity() error {
	s := &c.Security

	if s.SessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET is required")
	}
	if c.Server.IsProduction() && len(s.SessionSecret) < MinProductionSecretLength {
		return fmt.Errorf("SESSION_SECRET must be at least %d characters in production", MinProductionSecretLength)
	}
	if s.AdminPassword == "" {
		return fmt.Errorf("ADMIN_PASSWORD is required")
	}
	if len(s.AdminPassword) > maxAdminPasswordBytes {
		return fmt.Errorf("ADMIN_PASSWORD must be at most %d bytes", maxAdminPasswordBytes)
	}

	if s.SessionTimeout <= 0 {
		return fmt.Errorf("SESSION_TIMEOUT must be positive")
	}
	switch s.SessionStore {
	case "memory":
	case "badger":
		if s.SessionStorePath == "" {
			return fmt.Errorf("SESSION_STORE_PATH is required when SESSION_STORE=badger")
		}
	default:
		return fmt.Errorf("SESSION_STORE must be memory or badger, got %q", s.SessionStore)
	}
	if s.CleanupInterval <= 0 {
		return fmt.Errorf("SESSION_CLEANUP_INTERVAL must be positive")
	}

	if s.LoginMaxAttempts < 1 {
		return fmt.Errorf("LOGIN_MAX_ATTEMPTS must be at least 1")
	}
	if s.LoginWindow <= 0 {
		return fmt.Errorf("LOGIN_WINDOW must be positive")
	}

	if !s.RateLimitDisabled {
		if s.RateLimitReqs < 1 {
			return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1")
		}
		if s.RateLimitWindow <= 0 {
			return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
		}
	}

	for _, origin := range s.CORSOrigins {
		if origin == "*" && c.Server.IsProduction() {
			return fmt.Errorf("CORS_ORIGINS cannot be * in production")
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL %q is not a valid level", c.Logging.Level)
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
