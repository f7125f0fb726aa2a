// Forkcast - Restaurant Recommendation and Category Preference Analytics
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/forkcast/forkcast/internal/config"
	"github.com/forkcast/forkcast/internal/logging"
	"github.com/forkcast/forkcast/internal/metrics"
)

// Middleware builds the Chi middleware stack from server configuration.
type Middleware struct {
	cors        func(http.Handler) http.Handler
	rateReqs    int
	rateWindow  time.Duration
	rateEnabled bool
}

// NewMiddleware wires CORS and rate-limit factories from config. An empty
// origin list means CORS stays closed; zero rate-limit requests disables
// limiting.
func NewMiddleware(cfg *config.ServerConfig) *Middleware {
	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           86400,
	})

	return &Middleware{
		cors:        corsHandler,
		rateReqs:    cfg.RateLimitReqs,
		rateWindow:  cfg.RateLimitWindow,
		rateEnabled: cfg.RateLimitReqs > 0 && cfg.RateLimitWindow > 0,
	}
}

// CORS returns the configured CORS middleware.
func (m *Middleware) CORS() func(http.Handler) http.Handler {
	return m.cors
}

// RateLimit limits requests per client IP using the configured budget.
func (m *Middleware) RateLimit() func(http.Handler) http.Handler {
	if !m.rateEnabled {
		return passthrough
	}
	return httprate.Limit(m.rateReqs, m.rateWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
	)
}

// RateLimitLogin is a much stricter limiter for the login endpoint. Five
// attempts per five minutes per IP regardless of the general budget.
func (m *Middleware) RateLimitLogin() func(http.Handler) http.Handler {
	if !m.rateEnabled {
		return passthrough
	}
	return httprate.Limit(5, 5*time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
	)
}

// RateLimitHealth allows frequent probing by monitoring systems.
func (m *Middleware) RateLimitHealth() func(http.Handler) http.Handler {
	if !m.rateEnabled {
		return passthrough
	}
	return httprate.Limit(1000, time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
	)
}

func passthrough(next http.Handler) http.Handler {
	return next
}

// RequestID attaches a request id to the context and echoes it in the
// X-Request-ID header, honouring an id supplied by the caller. The context
// logger carries the id so every log line in the request is correlated.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = logging.GenerateRequestID()
			}

			ctx := logging.ContextWithRequestID(r.Context(), requestID)
			ctx = logging.ContextWithLogger(ctx,
				logging.With().Str("request_id", requestID).Logger())

			w.Header().Set("X-Request-ID", requestID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Instrument records request count and latency per route pattern.
func Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		endpoint := chi.RouteContext(r.Context()).RoutePattern()
		if endpoint == "" {
			endpoint = r.URL.Path
		}
		metrics.RecordAPIRequest(endpoint, r.Method, ww.Status(), time.Since(start))
	})
}
