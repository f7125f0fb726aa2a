// Forkcast - Restaurant Recommendation and Category Preference Analytics
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

// Package catalog holds the read-only business catalog and the loaders for
// the consolidated artifacts produced by the offline index pipeline.
//
// The catalog is built once at startup and never mutated afterwards, so it
// is safe to share across concurrent request handlers without locking.
package catalog
