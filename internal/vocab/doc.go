// Forkcast - Restaurant Recommendation and Category Preference Analytics
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

// Package vocab defines the fixed category vocabulary that fixes the
// dimensionality of every preference vector in the system.
//
// A Vocabulary is an immutable, ordered set of category labels with a
// stable label-to-dimension mapping. Changing the vocabulary invalidates
// every stored vector, so a deployment builds it once and injects it into
// every encoder rather than relying on ambient global state. Tests use
// small synthetic vocabularies; production uses Food().
package vocab
