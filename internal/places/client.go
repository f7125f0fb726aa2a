// Forkcast - Restaurant Recommendation and Category Preference Analytics
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

// Package places is the client for the third-party place-search proxy used
// to enrich ranked results with display metadata. The proxy is an external
// collaborator with its own availability; a circuit breaker keeps its
// outages from slowing the recommendation path, which degrades to bare
// business ids.
package places

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"

	"github.com/forkcast/forkcast/internal/config"
	"github.com/forkcast/forkcast/internal/metrics"
)

// ErrUnavailable is returned when the proxy is disabled, failing, or the
// breaker is open. Callers degrade to engine-only results.
var ErrUnavailable = errors.New("place search unavailable")

// Place is the display metadata the proxy returns for one business.
type Place struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Address  string  `json:"address"`
	Rating   float64 `json:"rating"`
	Price    string  `json:"price"`
	ImageURL string  `json:"image_url"`
}

// Client calls the place-search proxy with a circuit breaker in front.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[[]Place]
}

// NewClient builds a client from the places configuration. A nil return
// means the proxy is disabled in configuration.
func NewClient(cfg *config.PlacesConfig) *Client {
	if !cfg.Enabled {
		return nil
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	settings := gobreaker.Settings{
		Name:    "place-search",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	}

	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: timeout},
		breaker: gobreaker.NewCircuitBreaker[[]Place](settings),
	}
}

// Lookup fetches display metadata for the given business ids. Any failure,
// including an open breaker, maps to ErrUnavailable.
func (c *Client) Lookup(ctx context.Context, ids []string) ([]Place, error) {
	if c == nil {
		return nil, ErrUnavailable
	}

	result, err := c.breaker.Execute(func() ([]Place, error) {
		return c.fetch(ctx, ids)
	})
	if err != nil {
		outcome := "error"
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			outcome = "breaker_open"
		}
		metrics.PlacesRequests.WithLabelValues(outcome).Inc()
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	metrics.PlacesRequests.WithLabelValues("ok").Inc()
	return result, nil
}

func (c *Client) fetch(ctx context.Context, ids []string) ([]Place, error) {
	query := url.Values{}
	for _, id := range ids {
		query.Add("id", id)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/places?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("proxy returned %d", resp.StatusCode)
	}

	var places []Place
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, fmt.Errorf("decode proxy response: %w", err)
	}
	return places, nil
}
