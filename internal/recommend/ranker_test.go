// Forkcast - Restaurant Recommendation and Category Preference Analytics
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

package recommend

import "testing"

func TestRank(t *testing.T) {
	voc := testVocab()
	cat := testCatalog()

	// Mexican-leaning profile.
	pref := Normalize(Vector{3, 0, 1, 0})

	ranked := Rank(pref, cat, voc)

	if len(ranked) != cat.Len() {
		t.Fatalf("Rank() returned %d results, want %d", len(ranked), cat.Len())
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score > ranked[i-1].Score {
			t.Errorf("scores not non-increasing at %d: %v", i, ranked)
		}
	}

	// Mexican businesses beat Italian; the Japanese-only candidate shares
	// no category with the profile and lands last with score zero.
	pos := make(map[string]int, len(ranked))
	for i, r := range ranked {
		pos[r.BusinessID] = i
	}
	if pos["b1"] > pos["b2"] || pos["b3"] > pos["b2"] {
		t.Errorf("Mexican candidates not above Italian: %v", ranked)
	}
	last := ranked[len(ranked)-1]
	if last.BusinessID != "b4" || last.Score != 0 {
		t.Errorf("last = %+v, want b4 with score 0", last)
	}
}

func TestRank_ZeroProfile(t *testing.T) {
	voc := testVocab()
	cat := testCatalog()

	ranked := Rank(make(Vector, voc.Len()), cat, voc)

	if len(ranked) != cat.Len() {
		t.Fatalf("Rank() returned %d results, want %d", len(ranked), cat.Len())
	}
	// All scores zero: stable sort keeps the ascending-id catalog order.
	want := cat.IDs()
	for i, r := range ranked {
		if r.Score != 0 {
			t.Errorf("score[%d] = %v, want 0", i, r.Score)
		}
		if r.BusinessID != want[i] {
			t.Errorf("order[%d] = %s, want %s", i, r.BusinessID, want[i])
		}
	}
}

func TestRank_TieBreakByBusinessID(t *testing.T) {
	voc := testVocab()
	cat := testCatalog()

	// b1 and b4 are single-category; a profile weighing Mexican and
	// Japanese equally scores them identically.
	pref := Normalize(Vector{1, 0, 0, 1})

	ranked := Rank(pref, cat, voc)

	var mex, jap int
	for i, r := range ranked {
		switch r.BusinessID {
		case "b1":
			mex = i
		case "b4":
			jap = i
		}
	}
	if ranked[mex].Score != ranked[jap].Score {
		t.Fatalf("expected tie, got %v vs %v", ranked[mex].Score, ranked[jap].Score)
	}
	if mex > jap {
		t.Errorf("tie broken against id order: b1 at %d, b4 at %d", mex, jap)
	}
}
