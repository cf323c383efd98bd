// Menuboard - Restaurant Menu Administration
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuboard

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

// setRequiredEnv sets the variables without which Load refuses to start.
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SESSION_SECRET", "dev-secret")
	t.Setenv("ADMIN_PASSWORD", "hunter2")
	t.Setenv(ConfigPathEnvVar, "")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 3000 || cfg.Server.Host != "0.0.0.0" {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.Server.Address() != "0.0.0.0:3000" {
		t.Errorf("Address() = %q", cfg.Server.Address())
	}
	if cfg.Server.TrustProxy {
		t.Error("TrustProxy must default to false")
	}
	if cfg.Store.Path != "data.json" || cfg.Store.WriteRate != 5 || cfg.Store.WriteBurst != 10 {
		t.Errorf("store = %+v", cfg.Store)
	}
	if len(cfg.Menu.Categories) != 9 || cfg.Menu.Categories[1] != "smush burgers" {
		t.Errorf("categories = %v", cfg.Menu.Categories)
	}
	s := cfg.Security
	if s.SessionTimeout != 24*time.Hour || s.SessionStore != "memory" {
		t.Errorf("session settings = %v / %q", s.SessionTimeout, s.SessionStore)
	}
	if s.LoginMaxAttempts != 5 || s.LoginWindow != 15*time.Minute {
		t.Errorf("login limiter = %d / %v", s.LoginMaxAttempts, s.LoginWindow)
	}
	if s.RateLimitReqs != 100 || s.RateLimitWindow != 15*time.Minute || s.RateLimitDisabled {
		t.Errorf("rate limit = %d / %v / %v", s.RateLimitReqs, s.RateLimitWindow, s.RateLimitDisabled)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("TRUST_PROXY", "true")
	t.Setenv("DATA_FILE", "/srv/menu.json")
	t.Setenv("STORE_WRITE_RATE", "0.5")
	t.Setenv("MENU_CATEGORIES", " mains , sides,,drinks ")
	t.Setenv("SESSION_TIMEOUT", "2h")
	t.Setenv("LOGIN_MAX_ATTEMPTS", "3")
	t.Setenv("RATE_LIMIT_WINDOW", "1m")
	t.Setenv("CORS_ORIGINS", "https://admin.example.com,https://menu.example.com")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("UNRELATED_VARIABLE", "ignored")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 8080 || !cfg.Server.TrustProxy {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.Store.Path != "/srv/menu.json" || cfg.Store.WriteRate != 0.5 {
		t.Errorf("store = %+v", cfg.Store)
	}
	if want := []string{"mains", "sides", "drinks"}; !reflect.DeepEqual(cfg.Menu.Categories, want) {
		t.Errorf("categories = %q, want %q", cfg.Menu.Categories, want)
	}
	if cfg.Security.SessionTimeout != 2*time.Hour || cfg.Security.LoginMaxAttempts != 3 {
		t.Errorf("security = %+v", cfg.Security)
	}
	if cfg.Security.RateLimitWindow != time.Minute {
		t.Errorf("RateLimitWindow = %v", cfg.Security.RateLimitWindow)
	}
	if len(cfg.Security.CORSOrigins) != 2 {
		t.Errorf("CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level should be normalized, got %q", cfg.Logging.Level)
	}
}

func TestLoad_AliasesYieldToPrimaryNames(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "4000")
	t.Setenv("NODE_ENV", "staging")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 4000 || cfg.Server.Environment != EnvStaging {
		t.Errorf("aliases not applied: %+v", cfg.Server)
	}

	t.Setenv("HTTP_PORT", "5000")
	t.Setenv("ENVIRONMENT", "development")

	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 5000 || cfg.Server.Environment != EnvDevelopment {
		t.Errorf("primary names should win: %+v", cfg.Server)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	setRequiredEnv(t)

	path := filepath.Join(t.TempDir(), "menuboard.yaml")
	content := `
server:
  port: 9000
  trust_proxy: true
menu:
  categories:
    - starters
    - mains
security:
  session_store: badger
  session_store_path: /tmp/sessions
  login_window: 5m
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("HTTP_PORT", "9100")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 9100 {
		t.Errorf("environment should override file, port = %d", cfg.Server.Port)
	}
	if !cfg.Server.TrustProxy {
		t.Error("trust_proxy from file not applied")
	}
	if want := []string{"starters", "mains"}; !reflect.DeepEqual(cfg.Menu.Categories, want) {
		t.Errorf("categories = %v", cfg.Menu.Categories)
	}
	if cfg.Security.SessionStore != "badger" || cfg.Security.LoginWindow != 5*time.Minute {
		t.Errorf("security = %+v", cfg.Security)
	}
}

func TestLoad_MissingSecrets(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, "")

	t.Setenv("SESSION_SECRET", "")
	t.Setenv("ADMIN_PASSWORD", "pw")
	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "SESSION_SECRET") {
		t.Errorf("expected SESSION_SECRET error, got %v", err)
	}

	t.Setenv("SESSION_SECRET", "secret")
	t.Setenv("ADMIN_PASSWORD", "")
	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "ADMIN_PASSWORD") {
		t.Errorf("expected ADMIN_PASSWORD error, got %v", err)
	}
}

func validConfig() *Config {
	cfg := defaultConfig()
	cfg.Security.SessionSecret = "dev-secret"
	cfg.Security.AdminPassword = "hunter2"
	return cfg
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"bad port", func(c *Config) { c.Server.Port = 70000 }, "HTTP_PORT"},
		{"bad environment", func(c *Config) { c.Server.Environment = "prod" }, "ENVIRONMENT"},
		{"short production secret", func(c *Config) { c.Server.Environment = EnvProduction }, "at least 32"},
		{"long production secret", func(c *Config) {
			c.Server.Environment = EnvProduction
			c.Security.SessionSecret = strings.Repeat("s", 32)
		}, ""},
		{"password over bcrypt limit", func(c *Config) { c.Security.AdminPassword = strings.Repeat("p", 73) }, "72 bytes"},
		{"unknown session store", func(c *Config) { c.Security.SessionStore = "redis" }, "SESSION_STORE"},
		{"badger without path", func(c *Config) {
			c.Security.SessionStore = "badger"
			c.Security.SessionStorePath = ""
		}, "SESSION_STORE_PATH"},
		{"zero login attempts", func(c *Config) { c.Security.LoginMaxAttempts = 0 }, "LOGIN_MAX_ATTEMPTS"},
		{"zero rate limit", func(c *Config) { c.Security.RateLimitReqs = 0 }, "RATE_LIMIT_REQUESTS"},
		{"zero rate limit when disabled", func(c *Config) {
			c.Security.RateLimitReqs = 0
			c.Security.RateLimitDisabled = true
		}, ""},
		{"no categories", func(c *Config) { c.Menu.Categories = nil }, "MENU_CATEGORIES"},
		{"duplicate categories", func(c *Config) { c.Menu.Categories = []string{"Fries", "fries"} }, "duplicate"},
		{"empty store path", func(c *Config) { c.Store.Path = " " }, "DATA_FILE"},
		{"zero breaker failures", func(c *Config) { c.Store.BreakerFailures = 0 }, "STORE_BREAKER_FAILURES"},
		{"sub-second breaker timeout", func(c *Config) { c.Store.BreakerTimeout = time.Millisecond }, "STORE_BREAKER_TIMEOUT"},
		{"wildcard cors in production", func(c *Config) {
			c.Server.Environment = EnvProduction
			c.Security.SessionSecret = strings.Repeat("s", 32)
			c.Security.CORSOrigins = []string{"*"}
		}, "CORS_ORIGINS"},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "LOG_LEVEL"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfigString_OmitsSecrets(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	s := cfg.String()
	if strings.Contains(s, "dev-secret") || strings.Contains(s, "hunter2") {
		t.Errorf("String() leaks secrets: %s", s)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"HTTP_PORT":          "server.port",
		"DATA_FILE":          "store.path",
		"SESSION_SECRET":     "security.session_secret",
		"DISABLE_RATE_LIMIT": "security.rate_limit_disabled",
		"PATH":               "",
		"PORT":               "",
	}
	for in, want := range tests {
		if got := envTransformFunc(in); got != want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", in, got, want)
		}
	}
	if got := aliasTransformFunc("PORT"); got != "server.port" {
		t.Errorf("aliasTransformFunc(PORT) = %q", got)
	}
}
