// Forkcast - Restaurant Recommendation and Category Preference Analytics
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

package etl

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ChunkedWriter buffers key-to-values index entries and flushes them as
// numbered plain-text shard files once the buffer reaches its capacity,
// then clears itself. It bounds peak memory by capacity rather than by
// dataset size; the shards exist for inspection and debugging, not for the
// online engine.
//
// Shard line format: key|value<sep>value... with "|" as the first-level
// separator and the configured separator between values.
type ChunkedWriter struct {
	dir      string
	pattern  string
	sep      string
	capacity int

	buf    map[string][]string
	shards int
}

// NewChunkedWriter creates a writer flushing into dir using a shard name
// pattern with one integer verb, e.g. "category_index_%03d.txt". Capacity
// is the number of distinct keys buffered before a flush; values below one
// fall back to the default of 15000 keys.
func NewChunkedWriter(dir, pattern, sep string, capacity int) *ChunkedWriter {
	if capacity < 1 {
		capacity = 15000
	}
	return &ChunkedWriter{
		dir:      dir,
		pattern:  pattern,
		sep:      sep,
		capacity: capacity,
		buf:      make(map[string][]string),
	}
}

// Add appends values under key, flushing a shard first if the buffer is at
// capacity and the key is new.
func (w *ChunkedWriter) Add(key string, values ...string) error {
	if _, ok := w.buf[key]; !ok && len(w.buf) >= w.capacity {
		if err := w.Flush(); err != nil {
			return err
		}
	}
	w.buf[key] = append(w.buf[key], values...)
	return nil
}

// Flush writes the buffered remainder as one shard and clears the buffer.
// An empty buffer is a no-op.
func (w *ChunkedWriter) Flush() error {
	if len(w.buf) == 0 {
		return nil
	}

	// Sorted keys keep shard contents reproducible across runs.
	keys := make([]string, 0, len(w.buf))
	for k := range w.buf {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(k)
		sb.WriteByte('|')
		sb.WriteString(strings.Join(w.buf[k], w.sep))
		sb.WriteByte('\n')
	}

	path := filepath.Join(w.dir, fmt.Sprintf(w.pattern, w.shards))
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("write shard %s: %w", path, err)
	}

	w.shards++
	w.buf = make(map[string][]string)
	return nil
}

// Shards returns the number of shard files written so far.
func (w *ChunkedWriter) Shards() int {
	return w.shards
}
