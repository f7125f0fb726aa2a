// Forkcast - Restaurant Recommendation and Category Preference Analytics
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

package vocab

// Vocabulary is an immutable ordered set of category labels.
//
// The position of a label in the declaration order is its vector dimension.
// The zero value is an empty vocabulary; use New to construct one.
type Vocabulary struct {
	labels  []string
	indexOf map[string]int
}

// New builds a Vocabulary from the given labels.
//
// Duplicate labels are dropped, keeping the first occurrence, so the
// label-to-dimension mapping is a bijection regardless of input.
func New(labels []string) *Vocabulary {
	v := &Vocabulary{
		labels:  make([]string, 0, len(labels)),
		indexOf: make(map[string]int, len(labels)),
	}
	for _, label := range labels {
		if _, ok := v.indexOf[label]; ok {
			continue
		}
		v.indexOf[label] = len(v.labels)
		v.labels = append(v.labels, label)
	}
	return v
}

// Index returns the dimension index of a label and whether the label is
// part of the vocabulary. Labels outside the vocabulary are filtered by
// callers, never treated as errors.
func (v *Vocabulary) Index(label string) (int, bool) {
	idx, ok := v.indexOf[label]
	return idx, ok
}

// Contains reports whether the label is part of the vocabulary.
func (v *Vocabulary) Contains(label string) bool {
	_, ok := v.indexOf[label]
	return ok
}

// Len returns the vocabulary size, which is the dimensionality D of every
// vector in the system.
func (v *Vocabulary) Len() int {
	return len(v.labels)
}

// Labels returns a copy of the labels in dimension order.
func (v *Vocabulary) Labels() []string {
	out := make([]string, len(v.labels))
	copy(out, v.labels)
	return out
}
