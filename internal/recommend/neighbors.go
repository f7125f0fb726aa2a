// Forkcast - Restaurant Recommendation and Category Preference Analytics
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

package recommend

import (
	"sort"

	"github.com/forkcast/forkcast/internal/vocab"
)

// Neighbor is one similar reference user with their cosine similarity to
// the query. Similarities lie in [0, 1] in practice because every vector in
// the system is non-negative.
type Neighbor struct {
	UserID     string  `json:"user_id"`
	Similarity float64 `json:"similarity"`
}

// NeighborIndex finds the reference users most similar to a query vector.
//
// The brute-force implementation below is the only one today; the interface
// exists so an approximate nearest-neighbor structure can be swapped in
// without touching the aggregator or ranker.
type NeighborIndex interface {
	// Find returns at most k neighbors sorted non-increasing by
	// similarity. An empty index returns an empty slice, not an error.
	Find(query Vector, k int) []Neighbor

	// Vector returns the stored unit vector for a reference user.
	Vector(userID string) (Vector, bool)

	// Len returns the reference population size.
	Len() int
}

// BruteForceIndex scores the query against every reference user, O(U*D) per
// lookup. Reference vectors are derived once from the category review index
// and read-only afterwards.
type BruteForceIndex struct {
	userIDs []string
	vectors map[string]Vector
}

// NewBruteForceIndex derives one unit vector per reference user from a
// category review index (category -> user id -> positive review count).
// Categories outside the vocabulary are dropped; a user whose every count
// falls outside the vocabulary keeps a zero vector and simply never scores.
func NewBruteForceIndex(reviewIndex map[string]map[string]int, voc *vocab.Vocabulary) *BruteForceIndex {
	// Invert to per-user counts first so each user is encoded exactly once.
	perUser := make(map[string]map[string]int)
	for category, users := range reviewIndex {
		if !voc.Contains(category) {
			continue
		}
		for uid, count := range users {
			if perUser[uid] == nil {
				perUser[uid] = make(map[string]int)
			}
			perUser[uid][category] += count
		}
	}

	idx := &BruteForceIndex{
		userIDs: make([]string, 0, len(perUser)),
		vectors: make(map[string]Vector, len(perUser)),
	}
	for uid, counts := range perUser {
		idx.userIDs = append(idx.userIDs, uid)
		idx.vectors[uid] = EncodeReferenceUser(counts, voc)
	}
	// Ascending id order makes scans and tie-breaks reproducible across
	// runs; map iteration order would not be.
	sort.Strings(idx.userIDs)
	return idx
}

// Find implements NeighborIndex.
func (b *BruteForceIndex) Find(query Vector, k int) []Neighbor {
	if k <= 0 || len(b.userIDs) == 0 {
		return []Neighbor{}
	}

	neighbors := make([]Neighbor, 0, len(b.userIDs))
	for _, uid := range b.userIDs {
		neighbors = append(neighbors, Neighbor{
			UserID:     uid,
			Similarity: Dot(query, b.vectors[uid]),
		})
	}

	// Stable sort over the ascending-id scan order pins the tie-break:
	// equal similarities rank by user id.
	sort.SliceStable(neighbors, func(i, j int) bool {
		return neighbors[i].Similarity > neighbors[j].Similarity
	})

	if len(neighbors) > k {
		neighbors = neighbors[:k]
	}
	return neighbors
}

// Vector implements NeighborIndex.
func (b *BruteForceIndex) Vector(userID string) (Vector, bool) {
	v, ok := b.vectors[userID]
	return v, ok
}

// Len implements NeighborIndex.
func (b *BruteForceIndex) Len() int {
	return len(b.userIDs)
}

// UserIDs returns the reference user ids in ascending order.
func (b *BruteForceIndex) UserIDs() []string {
	out := make([]string, len(b.userIDs))
	copy(out, b.userIDs)
	return out
}

// Aggregate merges a neighbor set into one inferred preference vector: the
// similarity-weighted sum of the neighbors' vectors, normalized. Closer
// neighbors dominate the profile.
//
// An empty neighbor set, or one whose every similarity is zero, yields the
// zero vector; the engine falls back to the raw click vector before calling
// when no neighbors exist.
func Aggregate(neighbors []Neighbor, index NeighborIndex, dims int) Vector {
	raw := make(Vector, dims)
	for _, n := range neighbors {
		vec, ok := index.Vector(n.UserID)
		if !ok {
			continue
		}
		for i, x := range vec {
			raw[i] += n.Similarity * x
		}
	}
	return Normalize(raw)
}

// Ensure interface compliance.
var _ NeighborIndex = (*BruteForceIndex)(nil)
