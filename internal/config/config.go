// Menuboard - Restaurant Menu Administration
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuboard

package config

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Store    StoreConfig    `koanf:"store"`
	Menu     MenuConfig     `koanf:"menu"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // development, staging or production

	// TrustProxy derives the client IP from True-Client-IP, X-Real-IP or
	// X-Forwarded-For. Enable only behind a proxy that sets these headers.
	TrustProxy bool `koanf:"trust_proxy"`
}

// StoreConfig holds flat-file persistence settings.
type StoreConfig struct {
	// Path is the JSON file holding the menu.
	Path string `koanf:"path"`

	// WriteRate is the sustained number of file writes per second.
	// Zero or negative disables pacing.
	WriteRate float64 `koanf:"write_rate"`

	// WriteBurst is the number of writes allowed back to back.
	WriteBurst int `koanf:"write_burst"`

	// BreakerFailures is the number of consecutive store failures that open
	// the circuit breaker.
	BreakerFailures int `koanf:"breaker_failures"`

	// BreakerTimeout is how long an open breaker rejects calls.
	BreakerTimeout time.Duration `koanf:"breaker_timeout"`
}

// MenuConfig holds menu domain settings.
type MenuConfig struct {
	Categories []string `koanf:"categories"`
}

// SecurityConfig holds authentication and rate limiting settings.
type SecurityConfig struct {
	SessionSecret  string        `koanf:"session_secret"`
	AdminPassword  string        `koanf:"admin_password"`
	SessionTimeout time.Duration `koanf:"session_timeout"`

	// SessionStore is "memory" or "badger".
	SessionStore     string `koanf:"session_store"`
	SessionStorePath string `koanf:"session_store_path"`

	// CleanupInterval is how often expired sessions and login windows are purged.
	CleanupInterval time.Duration `koanf:"cleanup_interval"`

	LoginMaxAttempts int           `koanf:"login_max_attempts"`
	LoginWindow      time.Duration `koanf:"login_window"`

	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`

	CORSOrigins []string `koanf:"cors_origins"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// Address returns the host:port the HTTP server listens on.
func (s ServerConfig) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// IsProduction reports whether the server runs in production mode.
// Production enables Secure cookies and stricter secret validation.
func (s ServerConfig) IsProduction() bool {
	return s.Environment == EnvProduction
}

// String returns a log-safe summary; secrets are never included.
func (c *Config) String() string {
	return fmt.Sprintf("env=%s addr=%s store=%s session_store=%s trust_proxy=%t",
		c.Server.Environment, c.Server.Address(), c.Store.Path, c.Security.SessionStore, c.Server.TrustProxy)
}
