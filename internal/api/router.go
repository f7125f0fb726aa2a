// Forkcast - Restaurant Recommendation and Category Preference Analytics
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/forkcast/forkcast/internal/auth"
)

// Router assembles the HTTP surface of the service.
type Router struct {
	handler    *Handler
	middleware *Middleware
	jwt        *auth.JWTManager
}

// NewRouter wires handlers and middleware. jwt may be nil, in which case the
// authenticated routes reject every request.
func NewRouter(handler *Handler, mw *Middleware, jwt *auth.JWTManager) *Router {
	return &Router{handler: handler, middleware: mw, jwt: jwt}
}

// Setup builds the route tree.
func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global stack, applied to every route in order.
	r.Use(RequestID())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(rt.middleware.CORS())

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(rt.middleware.RateLimitHealth())
		r.Get("/live", rt.handler.HealthLive)
		r.Get("/ready", rt.handler.HealthReady)
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(rt.middleware.RateLimitLogin()).Post("/login", rt.handler.Login)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(rt.middleware.RateLimit())
		r.Use(Instrument)
		r.Use(auth.RequireAuth(rt.jwt))

		r.Post("/recommendations", rt.handler.Recommendations)
		r.Get("/users/{id}/recommendations", rt.handler.UserRecommendations)
		r.Get("/businesses/{id}", rt.handler.Business)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
