// Forkcast - Restaurant Recommendation and Category Preference Analytics
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

func TestInit_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "debug", Format: "json", Output: &buf})
	defer Init(DefaultConfig())

	Info().Str("component", "test").Msg("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output not JSON: %v (%q)", err, buf.String())
	}
	if entry["message"] != "hello" {
		t.Errorf("message = %v, want hello", entry["message"])
	}
	if entry["component"] != "test" {
		t.Errorf("component = %v, want test", entry["component"])
	}
	if entry["level"] != "info" {
		t.Errorf("level = %v, want info", entry["level"])
	}
}

func TestInit_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "warn", Format: "json", Output: &buf})
	defer Init(DefaultConfig())

	Info().Msg("suppressed")
	Warn().Msg("emitted")

	out := buf.String()
	if strings.Contains(out, "suppressed") {
		t.Error("info message emitted at warn level")
	}
	if !strings.Contains(out, "emitted") {
		t.Error("warn message missing at warn level")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"ERROR", zerolog.ErrorLevel},
		{"disabled", zerolog.Disabled},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCtx_RequestID(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "debug", Format: "json", Output: &buf})
	defer Init(DefaultConfig())

	ctx := ContextWithRequestID(context.Background(), "req-123")
	logger := Ctx(ctx)
	logger.Info().Msg("tagged")

	if !strings.Contains(buf.String(), "req-123") {
		t.Errorf("log output missing request id: %q", buf.String())
	}
}

func TestCtx_StoredLoggerWins(t *testing.T) {
	var buf bytes.Buffer
	stored := zerolog.New(&buf).With().Str("source", "stored").Logger()

	ctx := ContextWithLogger(context.Background(), stored)
	logger := Ctx(ctx)
	logger.Info().Msg("via stored")

	if !strings.Contains(buf.String(), "stored") {
		t.Errorf("stored logger not used: %q", buf.String())
	}
}

func TestGenerateRequestID_Unique(t *testing.T) {
	a, b := GenerateRequestID(), GenerateRequestID()
	if a == b {
		t.Error("consecutive request ids collide")
	}
	if len(a) != 36 {
		t.Errorf("request id length = %d, want 36 (uuid)", len(a))
	}
}
