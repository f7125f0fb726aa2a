// Forkcast - Restaurant Recommendation and Category Preference Analytics
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

package catalog

import (
	"fmt"
	"os"
	"sort"

	"github.com/goccy/go-json"
)

// Business is one candidate restaurant: an identifier plus the vocabulary
// categories it carries. Immutable once loaded.
type Business struct {
	ID         string   `json:"business_id"`
	Categories []string `json:"categories"`
	City       string   `json:"city,omitempty"`
	State      string   `json:"state,omitempty"`
}

// Catalog is the full candidate set, indexed by business id.
//
// IDs() returns ids in ascending order so that every iteration over the
// catalog is deterministic; ranking relies on this for reproducible
// tie-breaks.
type Catalog struct {
	byID map[string]Business
	ids  []string
}

// New builds a Catalog from the given businesses. A duplicate id replaces
// the earlier record, matching last-writer-wins load semantics.
func New(businesses []Business) *Catalog {
	c := &Catalog{byID: make(map[string]Business, len(businesses))}
	for _, b := range businesses {
		if _, ok := c.byID[b.ID]; !ok {
			c.ids = append(c.ids, b.ID)
		}
		c.byID[b.ID] = b
	}
	sort.Strings(c.ids)
	return c
}

// Get returns the business for an id. Missing ids are an input-filtering
// condition for callers, not an error.
func (c *Catalog) Get(id string) (Business, bool) {
	b, ok := c.byID[id]
	return b, ok
}

// IDs returns all business ids in ascending order.
func (c *Catalog) IDs() []string {
	return c.ids
}

// Len returns the number of businesses in the catalog.
func (c *Catalog) Len() int {
	return len(c.ids)
}

// LoadBusinessIndex reads a complete_business_index.json artifact, an object
// mapping business id to its list of category labels, and returns the
// catalog built from it. City and state are not part of the consolidated
// artifact; they only appear in the sharded inspection files.
func LoadBusinessIndex(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read business index: %w", err)
	}

	var index map[string][]string
	if err := json.Unmarshal(raw, &index); err != nil {
		return nil, fmt.Errorf("decode business index %s: %w", path, err)
	}

	businesses := make([]Business, 0, len(index))
	for id, categories := range index {
		businesses = append(businesses, Business{ID: id, Categories: categories})
	}
	return New(businesses), nil
}

// LoadReviewIndex reads a category_review_index.json artifact, an object
// mapping category to per-user positive review counts.
func LoadReviewIndex(path string) (map[string]map[string]int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read review index: %w", err)
	}

	var index map[string]map[string]int
	if err := json.Unmarshal(raw, &index); err != nil {
		return nil, fmt.Errorf("decode review index %s: %w", path, err)
	}
	return index, nil
}
