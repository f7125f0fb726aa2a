// Forkcast - Restaurant Recommendation and Category Preference Analytics
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := defaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults pass", func(*Config) {}, false},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, true},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, true},
		{"engine k zero", func(c *Config) { c.Engine.K = 0 }, true},
		{"short jwt secret", func(c *Config) { c.Security.JWTSecret = "short" }, true},
		{"full-length jwt secret", func(c *Config) {
			c.Security.JWTSecret = "0123456789abcdef0123456789abcdef"
		}, false},
		{"missing business index path", func(c *Config) { c.Artifacts.BusinessIndexPath = "" }, true},
		{"missing review index path", func(c *Config) { c.Artifacts.ReviewIndexPath = "" }, true},
		{"places enabled without url", func(c *Config) { c.Places.Enabled = true }, true},
		{"places enabled with url", func(c *Config) {
			c.Places.Enabled = true
			c.Places.BaseURL = "https://places.example.com"
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEnvTransform(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"FORKCAST_SERVER_PORT", "server.port"},
		{"FORKCAST_SERVER_RATE_LIMIT_REQS", "server.rate_limit_reqs"},
		{"FORKCAST_SECURITY_JWT_SECRET", "security.jwt_secret"},
		{"FORKCAST_ENGINE_TOP_N", "engine.top_n"},
		{"FORKCAST_ARTIFACTS_BUSINESS_INDEX_PATH", "artifacts.business_index_path"},
		{"FORKCAST_LOGGING_LEVEL", "logging.level"},
		{"FORKCAST_UNKNOWN", "unknown"},
	}

	for _, tt := range tests {
		if got := envTransform(tt.in); got != tt.want {
			t.Errorf("envTransform(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("FORKCAST_SERVER_PORT", "9000")
	t.Setenv("FORKCAST_ENGINE_K", "12")
	t.Setenv("FORKCAST_LOGGING_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Engine.K != 12 {
		t.Errorf("Engine.K = %d, want 12", cfg.Engine.K)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
server:
  port: 8555
engine:
  k: 7
  top_n: 25
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 8555 {
		t.Errorf("Server.Port = %d, want 8555", cfg.Server.Port)
	}
	if cfg.Engine.K != 7 || cfg.Engine.TopN != 25 {
		t.Errorf("Engine = %+v, want k=7 top_n=25", cfg.Engine)
	}
	// Untouched defaults survive the file layer.
	if cfg.Artifacts.BusinessIndexPath == "" {
		t.Error("Artifacts defaults lost after file load")
	}
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 8555\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("FORKCAST_SERVER_PORT", "9001")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 9001 {
		t.Errorf("Server.Port = %d, want env override 9001", cfg.Server.Port)
	}
}

func TestLoad_CORSOriginsFromEnv(t *testing.T) {
	t.Setenv("FORKCAST_SERVER_CORS_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.Server.CORSOrigins) != 2 {
		t.Fatalf("CORSOrigins = %v, want 2 entries", cfg.Server.CORSOrigins)
	}
	if cfg.Server.CORSOrigins[1] != "https://b.example.com" {
		t.Errorf("CORSOrigins[1] = %q", cfg.Server.CORSOrigins[1])
	}
}

func TestLoad_InvalidConfigRejected(t *testing.T) {
	t.Setenv("FORKCAST_SECURITY_JWT_SECRET", "tooshort")

	if _, err := Load(); err == nil {
		t.Error("Load() accepted a short jwt secret")
	}
}
