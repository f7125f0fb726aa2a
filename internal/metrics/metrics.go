// Forkcast - Restaurant Recommendation and Category Preference Analytics
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

// Package metrics provides Prometheus instrumentation for the
// recommendation engine, HTTP API, and offline index pipeline.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Engine metrics
	NeighborScanDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "engine_neighbor_scan_duration_seconds",
			Help:    "Duration of the brute-force neighbor scan in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	RankedBusinesses = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "engine_ranked_businesses",
			Help:    "Number of candidate businesses scored per ranking",
			Buckets: prometheus.ExponentialBuckets(10, 4, 8), // 10 .. ~160k
		},
	)

	// API metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"endpoint", "method", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method"},
	)

	// Index pipeline metrics
	PipelineRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipeline_records_total",
			Help: "Records seen by the index pipeline, by stream and outcome",
		},
		[]string{"stream", "outcome"}, // stream: "business", "review"; outcome: "kept", "skipped"
	)

	PipelineShardsWritten = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipeline_shards_written_total",
			Help: "Sharded index files flushed by the chunked writers",
		},
		[]string{"index"},
	)

	// Place-search proxy metrics
	PlacesRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "places_requests_total",
			Help: "Requests to the external place-search proxy",
		},
		[]string{"outcome"}, // "ok", "error", "breaker_open"
	)
)

// RecordAPIRequest records one served API request.
func RecordAPIRequest(endpoint, method string, status int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(endpoint, method, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(endpoint, method).Observe(duration.Seconds())
}
