// Forkcast - Restaurant Recommendation and Category Preference Analytics
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/forkcast/forkcast/internal/logging"
)

// Envelope is the wire shape of every API response. Data and Error are
// mutually exclusive; RequestID is always present so clients can quote it
// when reporting problems.
type Envelope struct {
	Data      interface{} `json:"data,omitempty"`
	Error     *ErrorInfo  `json:"error,omitempty"`
	RequestID string      `json:"request_id"`
}

// ErrorInfo carries a machine-readable code alongside the human message.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Common error codes used across handlers.
const (
	codeInvalidRequest     = "INVALID_REQUEST"
	codeValidationError    = "VALIDATION_ERROR"
	codeInvalidCredentials = "INVALID_CREDENTIALS"
	codeAuthNotConfigured  = "AUTH_NOT_CONFIGURED"
	codeNotFound           = "NOT_FOUND"
	codeInternalError      = "INTERNAL_ERROR"
)

// sanitizeLogValue replaces control characters so attacker-supplied strings
// cannot forge log lines.
func sanitizeLogValue(s string) string {
	var out strings.Builder
	out.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			out.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			out.WriteRune(r)
		}
	}
	return out.String()
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	writeEnvelope(w, r, status, Envelope{
		Data:      data,
		RequestID: logging.RequestIDFromContext(r.Context()),
	})
}

func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, err error) {
	if err != nil {
		logger := logging.Ctx(r.Context())
		logger.Error().
			Str("code", code).
			Str("error", sanitizeLogValue(err.Error())).
			Msg("API error")
	}
	writeEnvelope(w, r, status, Envelope{
		Error:     &ErrorInfo{Code: code, Message: message},
		RequestID: logging.RequestIDFromContext(r.Context()),
	})
}

func writeEnvelope(w http.ResponseWriter, r *http.Request, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")

	body, err := json.Marshal(env)
	if err != nil {
		logger := logging.Ctx(r.Context())
		logger.Error().Err(err).Msg("Failed to marshal response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logger := logging.Ctx(r.Context())
		logger.Error().Err(err).Msg("Failed to write response")
	}
}
