// Metergate - Utility Management API Gateway
// Copyright 2026 Metergate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/metergate/metergate

package config

import (
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 3000 {
		t.Errorf("expected default port 3000, got %d", cfg.Server.Port)
	}
	if cfg.Database.MaxOpenConns != 10 {
		t.Errorf("expected default max open conns 10, got %d", cfg.Database.MaxOpenConns)
	}
	if cfg.Security.DefaultCashierID != "U-003" {
		t.Errorf("expected default cashier U-003, got %s", cfg.Security.DefaultCashierID)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default log level info, got %s", cfg.Logging.Level)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://gate:pw@localhost:5432/ums_system")
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("DATABASE_MAX_OPEN_CONNS", "25")
	t.Setenv("SECURITY_CORS_ORIGINS", "http://a.example, http://b.example")
	t.Setenv("SECURITY_JWT_SECRET", strings.Repeat("s", 32))
	t.Setenv("LOGGING_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Database.URL != "postgres://gate:pw@localhost:5432/ums_system" {
		t.Errorf("unexpected database URL: %s", cfg.Database.URL)
	}
	if cfg.Database.MaxOpenConns != 25 {
		t.Errorf("expected max open conns 25, got %d", cfg.Database.MaxOpenConns)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[0] != "http://a.example" {
		t.Errorf("unexpected CORS origins: %v", cfg.Security.CORSOrigins)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Logging.Level)
	}
}

func TestLoadMissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing database URL")
	}
	if !strings.Contains(err.Error(), "database.url") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg := defaultConfig()
		cfg.Database.URL = "postgres://localhost/ums"
		cfg.Security.JWTSecret = strings.Repeat("s", 32)
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"port too low", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"zero open conns", func(c *Config) { c.Database.MaxOpenConns = 0 }, "max_open_conns"},
		{"short jwt secret", func(c *Config) { c.Security.JWTSecret = "short" }, "jwt_secret"},
		{"empty jwt secret", func(c *Config) { c.Security.JWTSecret = "" }, "jwt_secret"},
		{"empty cashier", func(c *Config) { c.Security.DefaultCashierID = "" }, "default_cashier_id"},
		{
			"long jwt secret ok",
			func(c *Config) { c.Security.JWTSecret = strings.Repeat("s", 32) },
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"SERVER_PORT", "server.port"},
		{"DATABASE_URL", "database.url"},
		{"DATABASE_MAX_OPEN_CONNS", "database.max_open_conns"},
		{"SECURITY_DEFAULT_CASHIER_ID", "security.default_cashier_id"},
		{"LOGGING_FORMAT", "logging.format"},
		{"PATH", ""},
		{"HOME", ""},
		{"LANG_US", ""},
	}

	for _, tt := range tests {
		if got := envTransformFunc(tt.in); got != tt.want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAddrAndEnvironment(t *testing.T) {
	cfg := defaultConfig()
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 3000

	if cfg.Addr() != "127.0.0.1:3000" {
		t.Errorf("unexpected addr: %s", cfg.Addr())
	}
	if !cfg.IsDevelopment() {
		t.Error("expected development mode by default")
	}
	cfg.Server.Environment = "production"
	if cfg.IsDevelopment() {
		t.Error("expected production mode")
	}
}

func TestSessionTimeoutDefault(t *testing.T) {
	if defaultConfig().Security.SessionTimeout != 24*time.Hour {
		t.Error("expected 24h session timeout default")
	}
}
