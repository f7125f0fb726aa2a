// Forkcast - Restaurant Recommendation and Category Preference Analytics
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/forkcast/forkcast/internal/config"
)

// ErrBadCredentials is returned for any username or password mismatch.
// Callers must not distinguish the two cases in responses.
var ErrBadCredentials = errors.New("invalid username or password")

// Authenticator verifies the single configured admin credential.
type Authenticator struct {
	username     string
	passwordHash []byte
}

// NewAuthenticator builds an authenticator from the security configuration.
// An empty username or hash disables login entirely; Authenticate then
// always fails.
func NewAuthenticator(cfg *config.SecurityConfig) *Authenticator {
	return &Authenticator{
		username:     cfg.AdminUsername,
		passwordHash: []byte(cfg.AdminPasswordHash),
	}
}

// Authenticate checks a username and plaintext password against the
// configured credential. bcrypt comparison runs even on username mismatch
// so timing does not reveal which field was wrong.
func (a *Authenticator) Authenticate(username, password string) error {
	if a.username == "" || len(a.passwordHash) == 0 {
		return ErrBadCredentials
	}

	err := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password))
	if err != nil || username != a.username {
		return ErrBadCredentials
	}
	return nil
}
