// Forkcast - Restaurant Recommendation and Category Preference Analytics
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/forkcast/forkcast/internal/config"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func testSecurityConfig(t *testing.T) *config.SecurityConfig {
	t.Helper()
	// MinCost keeps the bcrypt work factor out of test runtime.
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return &config.SecurityConfig{
		JWTSecret:         testSecret,
		SessionTimeout:    time.Hour,
		AdminUsername:     "admin",
		AdminPasswordHash: string(hash),
	}
}

func TestNewJWTManager_RejectsShortSecret(t *testing.T) {
	_, err := NewJWTManager(&config.SecurityConfig{JWTSecret: "short"})
	if err == nil {
		t.Error("NewJWTManager() accepted short secret")
	}
}

func TestJWTManager_RoundTrip(t *testing.T) {
	m, err := NewJWTManager(testSecurityConfig(t))
	if err != nil {
		t.Fatalf("NewJWTManager() error = %v", err)
	}

	token, err := m.GenerateToken("admin", "admin")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.Username != "admin" || claims.Role != "admin" {
		t.Errorf("claims = %+v, want admin/admin", claims)
	}
}

func TestJWTManager_TokenExpiry(t *testing.T) {
	tests := []struct {
		name    string
		timeout time.Duration
		want    time.Duration
	}{
		{name: "configured timeout", timeout: time.Hour, want: time.Hour},
		{name: "zero timeout defaults", timeout: 0, want: 24 * time.Hour},
		{name: "negative timeout defaults", timeout: -time.Minute, want: 24 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testSecurityConfig(t)
			cfg.SessionTimeout = tt.timeout

			m, err := NewJWTManager(cfg)
			if err != nil {
				t.Fatalf("NewJWTManager() error = %v", err)
			}
			if got := m.TokenExpiry(); got != tt.want {
				t.Errorf("TokenExpiry() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestJWTManager_RejectsExpiredToken(t *testing.T) {
	cfg := testSecurityConfig(t)
	cfg.SessionTimeout = -time.Minute
	m, err := NewJWTManager(cfg)
	if err != nil {
		t.Fatalf("NewJWTManager() error = %v", err)
	}

	token, err := m.GenerateToken("admin", "admin")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err := m.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ValidateToken() error = %v, want ErrInvalidToken", err)
	}
}

func TestJWTManager_RejectsWrongSecret(t *testing.T) {
	m1, _ := NewJWTManager(testSecurityConfig(t))
	other := testSecurityConfig(t)
	other.JWTSecret = "ffffffffffffffffffffffffffffffff"
	m2, _ := NewJWTManager(other)

	token, err := m1.GenerateToken("admin", "admin")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if _, err := m2.ValidateToken(token); err == nil {
		t.Error("ValidateToken() accepted token signed with another secret")
	}
}

func TestJWTManager_RejectsGarbage(t *testing.T) {
	m, _ := NewJWTManager(testSecurityConfig(t))
	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := m.ValidateToken(token); err == nil {
			t.Errorf("ValidateToken(%q) accepted", token)
		}
	}
}

func TestAuthenticator(t *testing.T) {
	a := NewAuthenticator(testSecurityConfig(t))

	tests := []struct {
		name     string
		username string
		password string
		wantErr  bool
	}{
		{"valid credential", "admin", "password123", false},
		{"wrong password", "admin", "wrong", true},
		{"wrong username", "root", "password123", true},
		{"both wrong", "root", "wrong", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := a.Authenticate(tt.username, tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("Authenticate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrBadCredentials) {
				t.Errorf("error = %v, want ErrBadCredentials", err)
			}
		})
	}
}

func TestAuthenticator_DisabledWithoutCredential(t *testing.T) {
	a := NewAuthenticator(&config.SecurityConfig{})
	if err := a.Authenticate("", ""); err == nil {
		t.Error("Authenticate() succeeded with no configured credential")
	}
}

func TestRequireAuth(t *testing.T) {
	m, _ := NewJWTManager(testSecurityConfig(t))

	var gotClaims *Claims
	handler := RequireAuth(m)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims = ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("valid token passes with claims", func(t *testing.T) {
		token, _ := m.GenerateToken("admin", "admin")
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if gotClaims == nil || gotClaims.Username != "admin" {
			t.Errorf("claims = %+v, want admin", gotClaims)
		}
	})

	t.Run("missing header rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("malformed token rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer nope")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})
}
