// Forkcast - Restaurant Recommendation and Category Preference Analytics
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

// Package config provides layered configuration for Forkcast using koanf:
// built-in defaults, then an optional YAML file, then FORKCAST_-prefixed
// environment variables, highest priority last.
package config

import (
	"fmt"
	"time"

	"github.com/forkcast/forkcast/internal/etl"
	"github.com/forkcast/forkcast/internal/logging"
	"github.com/forkcast/forkcast/internal/recommend"
)

// Config is the root configuration document.
type Config struct {
	Server    ServerConfig     `koanf:"server"`
	Security  SecurityConfig   `koanf:"security"`
	Engine    recommend.Config `koanf:"engine"`
	Artifacts ArtifactsConfig  `koanf:"artifacts"`
	Pipeline  etl.Config       `koanf:"pipeline"`
	Places    PlacesConfig     `koanf:"places"`
	Logging   logging.Config   `koanf:"logging"`
}

// ServerConfig configures the HTTP service.
type ServerConfig struct {
	Host    string        `koanf:"host"`
	Port    int           `koanf:"port"`
	Timeout time.Duration `koanf:"timeout"`

	// ShutdownTimeout bounds graceful shutdown of in-flight requests.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	CORSOrigins []string `koanf:"cors_origins"`

	// RateLimitReqs requests per RateLimitWindow per client IP.
	RateLimitReqs   int           `koanf:"rate_limit_reqs"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`
}

// SecurityConfig configures authentication.
type SecurityConfig struct {
	// JWTSecret signs bearer tokens. Minimum 32 characters; no default on
	// purpose so a deployment cannot silently run with a known secret.
	JWTSecret string `koanf:"jwt_secret"`

	SessionTimeout time.Duration `koanf:"session_timeout"`

	// AdminUsername and AdminPasswordHash (bcrypt) are the single
	// credential the login endpoint accepts.
	AdminUsername     string `koanf:"admin_username"`
	AdminPasswordHash string `koanf:"admin_password_hash"`
}

// ArtifactsConfig locates the consolidated index artifacts the engine loads
// at startup. Both are required; a missing artifact is fatal.
type ArtifactsConfig struct {
	BusinessIndexPath string `koanf:"business_index_path"`
	ReviewIndexPath   string `koanf:"review_index_path"`
}

// PlacesConfig configures the external place-search proxy client.
type PlacesConfig struct {
	Enabled bool          `koanf:"enabled"`
	BaseURL string        `koanf:"base_url"`
	APIKey  string        `koanf:"api_key"`
	Timeout time.Duration `koanf:"timeout"`
}

// defaultConfig returns a Config with all defaults applied before file and
// environment layers.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8460,
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			CORSOrigins:     []string{},
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
		},
		Security: SecurityConfig{
			JWTSecret:      "",
			SessionTimeout: 24 * time.Hour,
		},
		Engine: recommend.DefaultConfig(),
		Artifacts: ArtifactsConfig{
			BusinessIndexPath: "/data/index/complete_business_index.json",
			ReviewIndexPath:   "/data/index/category_review_index.json",
		},
		Pipeline: etl.DefaultConfig(),
		Places: PlacesConfig{
			Enabled: false,
			Timeout: 5 * time.Second,
		},
		Logging: logging.Config{
			Level:  "info",
			Format: "json",
		},
	}
}

// Validate checks invariants that must hold before the service starts.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if err := c.Engine.Validate(); err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	if c.Security.JWTSecret != "" && len(c.Security.JWTSecret) < 32 {
		return fmt.Errorf("security.jwt_secret must be at least 32 characters, got %d", len(c.Security.JWTSecret))
	}
	if c.Artifacts.BusinessIndexPath == "" {
		return fmt.Errorf("artifacts.business_index_path is required")
	}
	if c.Artifacts.ReviewIndexPath == "" {
		return fmt.Errorf("artifacts.review_index_path is required")
	}
	if c.Places.Enabled && c.Places.BaseURL == "" {
		return fmt.Errorf("places.base_url is required when places.enabled")
	}
	return nil
}
