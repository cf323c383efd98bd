// Menuboard - Restaurant Menu Administration
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuboard

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/menuboard/internal/validation"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/menuboard/config.yaml",
	"/etc/menuboard/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all defaults applied.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        3000,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			Environment: EnvDevelopment,
			TrustProxy:  false,
		},
		Store: StoreConfig{
			Path:       "data.json",
			WriteRate:  5,
			WriteBurst: 10,

			BreakerFailures: 5,
			BreakerTimeout:  30 * time.Second,
		},
		Menu: MenuConfig{
			Categories: append([]string(nil), validation.DefaultCategories...),
		},
		Security: SecurityConfig{
			SessionTimeout:    24 * time.Hour,
			SessionStore:      "memory",
			SessionStorePath:  "data/sessions",
			CleanupInterval:   5 * time.Minute,
			LoginMaxAttempts:  5,
			LoginWindow:       15 * time.Minute,
			RateLimitReqs:     100,
			RateLimitWindow:   15 * time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Load loads configuration using Koanf v2 with layered sources:
//  1. Defaults
//  2. Config file (optional)
//  3. Environment variables
//
// The result is validated before it is returned.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Aliases first so the primary variable wins when both are set.
	if err := k.Load(env.Provider("", ".", aliasTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment aliases: %w", err)
	}
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first config file found, or "" if none exists.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"menu.categories",
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars arrive as strings while the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variable names (lowercased) to koanf paths.
var envMappings = map[string]string{
	// Server
	"http_port":    "server.port",
	"http_host":    "server.host",
	"http_timeout": "server.timeout",
	"environment":  "server.environment",
	"trust_proxy":  "server.trust_proxy",

	// Store
	"data_file":              "store.path",
	"store_write_rate":       "store.write_rate",
	"store_write_burst":      "store.write_burst",
	"store_breaker_failures": "store.breaker_failures",
	"store_breaker_timeout":  "store.breaker_timeout",

	// Menu
	"menu_categories": "menu.categories",

	// Security
	"session_secret":           "security.session_secret",
	"admin_password":           "security.admin_password",
	"session_timeout":          "security.session_timeout",
	"session_store":            "security.session_store",
	"session_store_path":       "security.session_store_path",
	"session_cleanup_interval": "security.cleanup_interval",
	"login_max_attempts":       "security.login_max_attempts",
	"login_window":             "security.login_window",
	"rate_limit_requests":      "security.rate_limit_reqs",
	"rate_limit_window":        "security.rate_limit_window",
	"disable_rate_limit":       "security.rate_limit_disabled",
	"cors_origins":             "security.cors_origins",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envAliases are alternative names loaded before envMappings.
var envAliases = map[string]string{
	"port":     "server.port",
	"node_env": "server.environment",
}

// envTransformFunc maps an environment variable name to its koanf path.
// Unknown names map to "" and are skipped.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}

// aliasTransformFunc maps legacy variable names to their koanf path.
func aliasTransformFunc(key string) string {
	return envAliases[strings.ToLower(key)]
}

// normalize trims and lowercases enumerated values.
func (c *Config) normalize() {
	c.Server.Environment = strings.ToLower(strings.TrimSpace(c.Server.Environment))
	c.Security.SessionStore = strings.ToLower(strings.TrimSpace(c.Security.SessionStore))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
}
