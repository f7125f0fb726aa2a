// Forkcast - Restaurant Recommendation and Category Preference Analytics
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

package etl

import "strings"

// BusinessRecord is one raw business line from the dataset. Categories is
// the raw comma-separated string exactly as the dataset carries it.
type BusinessRecord struct {
	BusinessID string `json:"business_id"`
	Categories string `json:"categories"`
	City       string `json:"city"`
	State      string `json:"state"`
}

// ReviewRecord is one raw review line from the dataset.
type ReviewRecord struct {
	UserID     string  `json:"user_id"`
	BusinessID string  `json:"business_id"`
	Stars      float64 `json:"stars"`
}

// splitCategories trims each raw comma-separated token and keeps the ones
// the filter accepts. Empty tokens are dropped.
func splitCategories(raw string, keep func(string) bool) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" || !keep(token) {
			continue
		}
		out = append(out, token)
	}
	return out
}
