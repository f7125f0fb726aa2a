// Forkcast - Restaurant Recommendation and Category Preference Analytics
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

package recommend

import (
	"sort"

	"github.com/forkcast/forkcast/internal/catalog"
	"github.com/forkcast/forkcast/internal/vocab"
)

// RankedBusiness is one scored candidate in a ranking result.
type RankedBusiness struct {
	BusinessID string  `json:"business_id"`
	Score      float64 `json:"score"`
}

// Rank scores every business in the catalog against a preference vector and
// returns the full descending ordering. Output length always equals the
// catalog size; businesses sharing no category with the profile score zero
// and sink to the bottom.
//
// Business vectors are recomputed per call. They are a pure function of
// static category data, so a caller for whom this scan dominates can cache
// them; correctness does not require it.
func Rank(pref Vector, cat *catalog.Catalog, voc *vocab.Vocabulary) []RankedBusiness {
	ids := cat.IDs()
	ranked := make([]RankedBusiness, 0, len(ids))
	for _, id := range ids {
		ranked = append(ranked, RankedBusiness{
			BusinessID: id,
			Score:      Dot(pref, EncodeBusiness(id, cat, voc)),
		})
	}

	// Stable sort over the ascending-id catalog order: equal scores rank
	// by business id, keeping results reproducible across runs.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}
