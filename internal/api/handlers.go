// Forkcast - Restaurant Recommendation and Category Preference Analytics
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/forkcast/forkcast/internal/auth"
	"github.com/forkcast/forkcast/internal/catalog"
	"github.com/forkcast/forkcast/internal/logging"
	"github.com/forkcast/forkcast/internal/places"
	"github.com/forkcast/forkcast/internal/recommend"
)

// maxRequestBody caps JSON request bodies. Click sessions are small; a
// megabyte is already generous.
const maxRequestBody = 1 << 20

// Handler holds the dependencies shared by all HTTP handlers.
type Handler struct {
	engine *recommend.Engine
	jwt    *auth.JWTManager
	authn  *auth.Authenticator
	places *places.Client
}

// NewHandler builds the handler set. The places client may be nil when the
// proxy is disabled.
func NewHandler(engine *recommend.Engine, jwt *auth.JWTManager, authn *auth.Authenticator, pl *places.Client) *Handler {
	return &Handler{
		engine: engine,
		jwt:    jwt,
		authn:  authn,
		places: pl,
	}
}

// HealthLive reports process liveness.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// HealthReady reports whether the engine is loaded and able to serve
// recommendations.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if h.engine == nil || h.engine.Catalog().Len() == 0 {
		respondError(w, r, http.StatusServiceUnavailable, "NOT_READY",
			"recommendation engine not loaded", nil)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]interface{}{
		"status":     "ready",
		"businesses": h.engine.Catalog().Len(),
	})
}

// LoginRequest is the login request body.
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=128"`
	Password string `json:"password" validate:"required,max=128"`
}

// LoginResponse carries the bearer token issued on successful login.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Login verifies the configured admin credential and issues a JWT.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if h.jwt == nil || h.authn == nil {
		respondError(w, r, http.StatusServiceUnavailable, codeAuthNotConfigured,
			"authentication is not configured", nil)
		return
	}

	var req LoginRequest
	if err := decodeBody(w, r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, codeInvalidRequest,
			"invalid request body", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	if err := h.authn.Authenticate(req.Username, req.Password); err != nil {
		logger := logging.Ctx(r.Context())
		logger.Warn().
			Str("username", sanitizeLogValue(req.Username)).
			Msg("Login rejected")
		respondError(w, r, http.StatusUnauthorized, codeInvalidCredentials,
			"invalid username or password", nil)
		return
	}

	token, err := h.jwt.GenerateToken(req.Username, "admin")
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, codeInternalError,
			"failed to issue token", err)
		return
	}
	expiresAt := time.Now().Add(h.jwt.TokenExpiry())

	logger := logging.Ctx(r.Context())
	logger.Info().
		Str("username", sanitizeLogValue(req.Username)).
		Msg("Login succeeded")
	respondJSON(w, r, http.StatusOK, LoginResponse{Token: token, ExpiresAt: expiresAt})
}

// RecommendRequest is the body of POST /api/v1/recommendations. Clicks may
// be empty; an empty session ranks the catalog in its stable order.
type RecommendRequest struct {
	Clicks []string `json:"clicks" validate:"dive,min=1,max=256"`
	Limit  int      `json:"limit" validate:"min=0,max=500"`
}

// RecommendResponse is the ranked result list for a click session.
type RecommendResponse struct {
	Results []recommend.RankedBusiness `json:"results"`
	Count   int                        `json:"count"`
}

// Recommendations ranks businesses for the submitted click session.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if err := decodeBody(w, r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, codeInvalidRequest,
			"invalid request body", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	results, err := h.engine.Recommend(r.Context(), req.Clicks, req.Limit)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, codeInternalError,
			"recommendation failed", err)
		return
	}

	respondJSON(w, r, http.StatusOK, RecommendResponse{Results: results, Count: len(results)})
}

// UserRecommendations ranks businesses from a known user's review history.
func (h *Handler) UserRecommendations(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	limit := getIntParam(r, "limit", 0)
	if limit < 0 || limit > 500 {
		respondError(w, r, http.StatusBadRequest, codeValidationError,
			"limit must be between 0 and 500", nil)
		return
	}

	results, err := h.engine.RecommendForUser(r.Context(), userID, limit)
	if err != nil {
		if errors.Is(err, recommend.ErrUnknownUser) {
			respondError(w, r, http.StatusNotFound, codeNotFound,
				"unknown user", nil)
			return
		}
		respondError(w, r, http.StatusInternalServerError, codeInternalError,
			"recommendation failed", err)
		return
	}

	respondJSON(w, r, http.StatusOK, RecommendResponse{Results: results, Count: len(results)})
}

// BusinessResponse is a catalog record with optional proxy enrichment.
type BusinessResponse struct {
	Business catalog.Business `json:"business"`
	Place    *places.Place    `json:"place,omitempty"`
}

// Business returns one catalog record, enriched with place-search metadata
// when the proxy is configured and answering. Proxy failures degrade to the
// bare catalog record rather than failing the request.
func (h *Handler) Business(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	biz, ok := h.engine.Catalog().Get(id)
	if !ok {
		respondError(w, r, http.StatusNotFound, codeNotFound, "unknown business", nil)
		return
	}

	resp := BusinessResponse{Business: biz}
	if h.places != nil {
		found, err := h.places.Lookup(r.Context(), []string{id})
		switch {
		case err != nil:
			logger := logging.Ctx(r.Context())
			logger.Warn().Err(err).
				Str("business_id", sanitizeLogValue(id)).
				Msg("Place enrichment unavailable")
		case len(found) > 0:
			resp.Place = &found[0]
		}
	}

	respondJSON(w, r, http.StatusOK, resp)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// getIntParam extracts an integer query parameter with a default value.
func getIntParam(r *http.Request, key string, defaultValue int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return v
}
