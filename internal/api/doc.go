// Forkcast - Restaurant Recommendation and Category Preference Analytics
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

// Package api provides HTTP routing and handlers for the recommendation
// service using the Chi router.
//
// Routes are grouped by concern:
//
//   - /api/v1/health: liveness and readiness, permissive rate limit
//   - /api/v1/auth: login, strict rate limit against brute force
//   - /api/v1: recommendation and catalog endpoints, authenticated
//   - /metrics: Prometheus scrape endpoint
//
// All responses share one JSON envelope carrying data, a structured error,
// and the request id so clients can correlate failures with server logs.
package api
