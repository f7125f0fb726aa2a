// Forkcast - Restaurant Recommendation and Category Preference Analytics
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

package recommend

import "fmt"

// Config contains engine tuning parameters.
type Config struct {
	// K is the number of reference neighbors aggregated per request.
	// Typical range: 5-50.
	K int `koanf:"k"`

	// TopN is the default number of ranked businesses returned when a
	// request does not ask for a specific count.
	TopN int `koanf:"top_n"`
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		K:    5,
		TopN: 10,
	}
}

// Validate checks configuration invariants.
func (c Config) Validate() error {
	if c.K < 1 {
		return fmt.Errorf("k must be >= 1, got %d", c.K)
	}
	if c.TopN < 1 {
		return fmt.Errorf("top_n must be >= 1, got %d", c.TopN)
	}
	return nil
}
