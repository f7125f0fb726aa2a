// Forkcast - Restaurant Recommendation and Category Preference Analytics
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

/*
Package recommend implements the preference-vector recommendation engine.

The engine turns raw category-count data into comparable unit vectors in the
dimension space fixed by the category vocabulary, finds the reference users
most similar to a query, aggregates their preferences into one inferred
profile, and ranks every candidate business against it.

# Pipeline

At request time the flow is:

 1. Encode the session's clicked business ids into a normalized click vector.
 2. Scan the reference population for the k nearest users by cosine
    similarity (dot product of unit vectors).
 3. Aggregate the neighbors into a similarity-weighted profile, falling back
    to the click vector when no neighbors exist.
 4. Score every catalog business against the profile and rank descending.
 5. Drop already-clicked businesses and truncate to the requested count.

# Concurrency

The engine is purely synchronous vector arithmetic. All shared state
(vocabulary, catalog, reference vectors) is built before the engine is
published and read-only afterwards, so any number of requests may run
concurrently without locking. Per-request vectors are freshly allocated.

# Scale

Neighbor search is a brute-force O(U*D) scan, acceptable for reference
populations in the low hundreds of thousands with a vocabulary in the low
hundreds. It sits behind the NeighborIndex interface so an approximate
structure can replace it without touching the aggregator or ranker.
*/
package recommend
