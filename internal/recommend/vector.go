// Forkcast - Restaurant Recommendation and Category Preference Analytics
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

package recommend

import (
	"math"

	"github.com/forkcast/forkcast/internal/catalog"
	"github.com/forkcast/forkcast/internal/vocab"
)

// Vector is a dense preference vector in the vocabulary's dimension space.
// Coordinates are non-negative. A vector is either raw (unnormalized counts)
// or unit (L2 norm 1, or exactly zero when the raw vector was all-zero).
type Vector []float64

// Dot returns the dot product of two vectors. For unit vectors this is the
// cosine similarity. Mismatched lengths score the overlapping prefix, which
// cannot happen for vectors produced against the same vocabulary.
func Dot(a, b Vector) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

// Norm returns the Euclidean norm of v.
func Norm(v Vector) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Normalize returns a fresh unit-length copy of v. The zero vector has no
// direction and is returned as a zero copy rather than dividing by zero.
func Normalize(v Vector) Vector {
	out := make(Vector, len(v))
	norm := Norm(v)
	if norm == 0 {
		return out
	}
	for i, x := range v {
		out[i] = x / norm
	}
	return out
}

// EncodeClicks encodes a session's clicked business ids as a unit preference
// vector: each recognized category of each clicked business increments its
// dimension by one, then the result is normalized.
//
// Unknown business ids and categories outside the vocabulary contribute
// nothing; they are intentional filtering, not failures. An empty click list
// yields the exact zero vector.
func EncodeClicks(clicks []string, cat *catalog.Catalog, voc *vocab.Vocabulary) Vector {
	raw := make(Vector, voc.Len())
	for _, id := range clicks {
		b, ok := cat.Get(id)
		if !ok {
			continue
		}
		for _, label := range b.Categories {
			if idx, ok := voc.Index(label); ok {
				raw[idx]++
			}
		}
	}
	return Normalize(raw)
}

// EncodeBusiness encodes one business as a unit vector: every recognized
// category gets dimension value one, membership rather than count, then the
// result is normalized. A business with no recognized categories (or an
// unknown id) yields the zero vector.
func EncodeBusiness(id string, cat *catalog.Catalog, voc *vocab.Vocabulary) Vector {
	raw := make(Vector, voc.Len())
	if b, ok := cat.Get(id); ok {
		for _, label := range b.Categories {
			if idx, ok := voc.Index(label); ok {
				raw[idx] = 1
			}
		}
	}
	return Normalize(raw)
}

// EncodeReferenceUser encodes a reference user's per-category positive
// review counts as a unit vector. Counts accumulate into their dimension, so
// two labels mapping to the same dimension would add rather than silently
// overwrite each other.
func EncodeReferenceUser(counts map[string]int, voc *vocab.Vocabulary) Vector {
	raw := make(Vector, voc.Len())
	for label, count := range counts {
		if idx, ok := voc.Index(label); ok {
			raw[idx] += float64(count)
		}
	}
	return Normalize(raw)
}
