// Forkcast - Restaurant Recommendation and Category Preference Analytics
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

package recommend

import (
	"math"
	"testing"

	"github.com/forkcast/forkcast/internal/catalog"
	"github.com/forkcast/forkcast/internal/vocab"
)

const tolerance = 1e-9

func testVocab() *vocab.Vocabulary {
	return vocab.New([]string{"Mexican", "Italian", "Cafes", "Japanese"})
}

func testCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Business{
		{ID: "b1", Categories: []string{"Mexican"}},
		{ID: "b2", Categories: []string{"Italian"}},
		{ID: "b3", Categories: []string{"Mexican", "Cafes"}},
		{ID: "b4", Categories: []string{"Japanese"}},
	})
}

func isUnit(v Vector) bool {
	return math.Abs(Norm(v)-1) < tolerance
}

func isZero(v Vector) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		in       Vector
		wantUnit bool
	}{
		{"zero vector stays zero", Vector{0, 0, 0}, false},
		{"single component", Vector{3, 0, 0}, true},
		{"multiple components", Vector{3, 4, 0}, true},
		{"tiny components", Vector{1e-8, 1e-8, 1e-8}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if tt.wantUnit && !isUnit(got) {
				t.Errorf("Norm(Normalize(%v)) = %v, want 1", tt.in, Norm(got))
			}
			if !tt.wantUnit && !isZero(got) {
				t.Errorf("Normalize(%v) = %v, want zero vector", tt.in, got)
			}
		})
	}
}

func TestNormalize_FreshVector(t *testing.T) {
	in := Vector{3, 4}
	out := Normalize(in)

	out[0] = 99
	if in[0] != 3 {
		t.Error("Normalize aliased its input")
	}
}

func TestDot(t *testing.T) {
	tests := []struct {
		name string
		a, b Vector
		want float64
	}{
		{"orthogonal", Vector{1, 0}, Vector{0, 1}, 0},
		{"identical unit", Vector{1, 0}, Vector{1, 0}, 1},
		{"general", Vector{1, 2, 3}, Vector{4, 5, 6}, 32},
		{"zero operand", Vector{0, 0}, Vector{1, 1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Dot(tt.a, tt.b); math.Abs(got-tt.want) > tolerance {
				t.Errorf("Dot(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestEncodeClicks(t *testing.T) {
	voc := testVocab()
	cat := testCatalog()

	t.Run("empty clicks yield exact zero vector", func(t *testing.T) {
		if got := EncodeClicks(nil, cat, voc); !isZero(got) {
			t.Errorf("EncodeClicks(nil) = %v, want zero vector", got)
		}
	})

	t.Run("non-empty clicks yield unit vector", func(t *testing.T) {
		got := EncodeClicks([]string{"b1", "b3", "b1"}, cat, voc)
		if !isUnit(got) {
			t.Fatalf("Norm = %v, want 1", Norm(got))
		}

		// Clicks [b1, b3, b1]: Mexican counted 3 times, Cafes once,
		// everything else zero. Mexican must dominate.
		mex, _ := voc.Index("Mexican")
		cafes, _ := voc.Index("Cafes")
		ita, _ := voc.Index("Italian")
		jap, _ := voc.Index("Japanese")

		if got[mex] <= got[cafes] {
			t.Errorf("Mexican %v not dominant over Cafes %v", got[mex], got[cafes])
		}
		if got[ita] != 0 || got[jap] != 0 {
			t.Errorf("unclicked dimensions nonzero: %v", got)
		}
	})

	t.Run("unknown business ids contribute nothing", func(t *testing.T) {
		if got := EncodeClicks([]string{"ghost", "absent"}, cat, voc); !isZero(got) {
			t.Errorf("unknown ids produced %v, want zero vector", got)
		}
	})
}

func TestEncodeBusiness(t *testing.T) {
	voc := testVocab()
	cat := testCatalog()

	t.Run("multi-category one-hot normalized", func(t *testing.T) {
		got := EncodeBusiness("b3", cat, voc)
		if !isUnit(got) {
			t.Fatalf("Norm = %v, want 1", Norm(got))
		}
		mex, _ := voc.Index("Mexican")
		cafes, _ := voc.Index("Cafes")
		// Membership encoding: both categories weigh the same.
		if math.Abs(got[mex]-got[cafes]) > tolerance {
			t.Errorf("one-hot dims differ: %v vs %v", got[mex], got[cafes])
		}
	})

	t.Run("unknown id yields zero vector", func(t *testing.T) {
		if got := EncodeBusiness("ghost", cat, voc); !isZero(got) {
			t.Errorf("unknown id produced %v", got)
		}
	})

	t.Run("no recognized categories yields zero vector", func(t *testing.T) {
		c := catalog.New([]catalog.Business{{ID: "bx", Categories: []string{"Dry Cleaning"}}})
		if got := EncodeBusiness("bx", c, voc); !isZero(got) {
			t.Errorf("unrecognized categories produced %v", got)
		}
	})
}

func TestEncodeReferenceUser(t *testing.T) {
	voc := testVocab()

	t.Run("counts weigh dimensions and normalize", func(t *testing.T) {
		got := EncodeReferenceUser(map[string]int{"Mexican": 5, "Italian": 1}, voc)
		if !isUnit(got) {
			t.Fatalf("Norm = %v, want 1", Norm(got))
		}
		mex, _ := voc.Index("Mexican")
		ita, _ := voc.Index("Italian")
		if got[mex] <= got[ita] {
			t.Errorf("count 5 dim %v not above count 1 dim %v", got[mex], got[ita])
		}
	})

	t.Run("unknown categories dropped", func(t *testing.T) {
		got := EncodeReferenceUser(map[string]int{"Plumbing": 9}, voc)
		if !isZero(got) {
			t.Errorf("unknown category produced %v", got)
		}
	})

	t.Run("empty counts yield zero vector", func(t *testing.T) {
		if got := EncodeReferenceUser(nil, voc); !isZero(got) {
			t.Errorf("empty counts produced %v", got)
		}
	})
}
