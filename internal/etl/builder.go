// Forkcast - Restaurant Recommendation and Category Preference Analytics
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

package etl

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/forkcast/forkcast/internal/metrics"
	"github.com/forkcast/forkcast/internal/vocab"
)

// Artifact file names produced under the output directory.
const (
	BusinessIndexFile = "complete_business_index.json"
	ReviewIndexFile   = "category_review_index.json"

	categoryShardPattern = "category_index_%03d.txt"
	businessShardPattern = "business_index_%03d.txt"
)

// maxLineBytes caps one JSONL record. Dataset lines run a few KB; 1MB is
// generous headroom before a line is treated as corrupt.
const maxLineBytes = 1 << 20

// Config controls one pipeline run.
type Config struct {
	// BusinessPath is the business JSONL input.
	BusinessPath string `koanf:"business_path"`

	// ReviewPath is the review JSONL input.
	ReviewPath string `koanf:"review_path"`

	// OutputDir receives consolidated artifacts and shards.
	OutputDir string `koanf:"output_dir"`

	// ChunkCapacity is the number of buffered index keys per shard flush.
	ChunkCapacity int `koanf:"chunk_capacity"`

	// MinStars is the rating at or above which a review counts as
	// positive, on the dataset's 0-5 scale.
	MinStars float64 `koanf:"min_stars"`
}

// DefaultConfig returns pipeline defaults matching the dataset's scale.
func DefaultConfig() Config {
	return Config{
		ChunkCapacity: 15000,
		MinStars:      4.0,
	}
}

// Stats counts what one pipeline run saw and kept. Per-record skips are
// tallied here, never surfaced as errors.
type Stats struct {
	BusinessesRead    int `json:"businesses_read"`
	BusinessesKept    int `json:"businesses_kept"`
	BusinessesSkipped int `json:"businesses_skipped"`
	ReviewsRead       int `json:"reviews_read"`
	ReviewsQualified  int `json:"reviews_qualified"`
	ReviewsSkipped    int `json:"reviews_skipped"`
	MalformedLines    int `json:"malformed_lines"`
	ShardsWritten     int `json:"shards_written"`
}

// Builder runs the offline index pipeline.
type Builder struct {
	cfg    Config
	voc    *vocab.Vocabulary
	logger zerolog.Logger

	// businessIndex is the complete business-to-categories index kept in
	// memory across both passes; the review pass needs it to resolve a
	// review's categories.
	businessIndex map[string][]string
}

// NewBuilder creates a pipeline over the given vocabulary.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewBuilder(cfg Config, voc *vocab.Vocabulary, logger zerolog.Logger) (*Builder, error) {
	if voc == nil || voc.Len() == 0 {
		return nil, errors.New("vocabulary is empty")
	}
	if cfg.BusinessPath == "" {
		return nil, errors.New("business input path is required")
	}
	if cfg.ReviewPath == "" {
		return nil, errors.New("review input path is required")
	}
	if cfg.OutputDir == "" {
		return nil, errors.New("output directory is required")
	}
	if cfg.ChunkCapacity < 1 {
		cfg.ChunkCapacity = DefaultConfig().ChunkCapacity
	}
	if cfg.MinStars == 0 {
		cfg.MinStars = DefaultConfig().MinStars
	}

	return &Builder{
		cfg:           cfg,
		voc:           voc,
		logger:        logger,
		businessIndex: make(map[string][]string),
	}, nil
}

// Run executes both passes and writes every artifact. I/O failures are
// fatal; per-record problems are counted in Stats and skipped.
func (b *Builder) Run(ctx context.Context) (*Stats, error) {
	if err := os.MkdirAll(b.cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	stats := &Stats{}

	if err := b.scanBusinesses(ctx, stats); err != nil {
		return stats, err
	}
	b.logger.Info().
		Int("read", stats.BusinessesRead).
		Int("kept", stats.BusinessesKept).
		Int("skipped", stats.BusinessesSkipped).
		Msg("Business pass complete")

	reviewIndex, err := b.scanReviews(ctx, stats)
	if err != nil {
		return stats, err
	}
	b.logger.Info().
		Int("read", stats.ReviewsRead).
		Int("qualified", stats.ReviewsQualified).
		Int("skipped", stats.ReviewsSkipped).
		Msg("Review pass complete")

	if err := b.writeBusinessArtifact(); err != nil {
		return stats, err
	}
	if err := writeReviewArtifact(filepath.Join(b.cfg.OutputDir, ReviewIndexFile), reviewIndex); err != nil {
		return stats, err
	}

	b.logger.Info().
		Int("businesses", len(b.businessIndex)).
		Int("categories", len(reviewIndex)).
		Int("shards", stats.ShardsWritten).
		Msg("Index artifacts written")

	return stats, nil
}

// BusinessIndex returns the complete business-to-categories index built by
// the business pass.
func (b *Builder) BusinessIndex() map[string][]string {
	return b.businessIndex
}

// scanBusinesses is the first streaming pass: filter categories, build the
// complete business index, and feed both sharded inspection indexes.
func (b *Builder) scanBusinesses(ctx context.Context, stats *Stats) error {
	categoryShards := NewChunkedWriter(b.cfg.OutputDir, categoryShardPattern, ";", b.cfg.ChunkCapacity)
	businessShards := NewChunkedWriter(b.cfg.OutputDir, businessShardPattern, ",", b.cfg.ChunkCapacity)

	err := scanLines(ctx, b.cfg.BusinessPath, func(line []byte) error {
		stats.BusinessesRead++

		var rec BusinessRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			stats.MalformedLines++
			stats.BusinessesSkipped++
			metrics.PipelineRecords.WithLabelValues("business", "skipped").Inc()
			return nil
		}
		if rec.BusinessID == "" || rec.Categories == "" {
			stats.BusinessesSkipped++
			metrics.PipelineRecords.WithLabelValues("business", "skipped").Inc()
			return nil
		}

		categories := splitCategories(rec.Categories, b.voc.Contains)
		if len(categories) == 0 {
			// No recognized category at all: not a restaurant.
			stats.BusinessesSkipped++
			metrics.PipelineRecords.WithLabelValues("business", "skipped").Inc()
			return nil
		}

		b.businessIndex[rec.BusinessID] = categories

		descriptor := fmt.Sprintf("%s(%s,%s)", rec.BusinessID, rec.City, rec.State)
		for _, cat := range categories {
			if err := categoryShards.Add(cat, descriptor); err != nil {
				return err
			}
		}
		if err := businessShards.Add(rec.BusinessID, categories...); err != nil {
			return err
		}

		stats.BusinessesKept++
		metrics.PipelineRecords.WithLabelValues("business", "kept").Inc()
		return nil
	}, func() {
		stats.BusinessesRead++
		stats.MalformedLines++
		stats.BusinessesSkipped++
		metrics.PipelineRecords.WithLabelValues("business", "skipped").Inc()
	})
	if err != nil {
		return fmt.Errorf("business pass: %w", err)
	}

	if err := categoryShards.Flush(); err != nil {
		return err
	}
	if err := businessShards.Flush(); err != nil {
		return err
	}

	stats.ShardsWritten += categoryShards.Shards() + businessShards.Shards()
	metrics.PipelineShardsWritten.WithLabelValues("category").Add(float64(categoryShards.Shards()))
	metrics.PipelineShardsWritten.WithLabelValues("business").Add(float64(businessShards.Shards()))
	return nil
}

// scanReviews is the second streaming pass: count positive reviews per
// category and user. Reviews for businesses the first pass did not keep
// are skipped silently.
func (b *Builder) scanReviews(ctx context.Context, stats *Stats) (map[string]map[string]int, error) {
	reviewIndex := make(map[string]map[string]int)

	err := scanLines(ctx, b.cfg.ReviewPath, func(line []byte) error {
		stats.ReviewsRead++

		var rec ReviewRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			stats.MalformedLines++
			stats.ReviewsSkipped++
			metrics.PipelineRecords.WithLabelValues("review", "skipped").Inc()
			return nil
		}
		if rec.UserID == "" || rec.BusinessID == "" || rec.Stars < b.cfg.MinStars {
			stats.ReviewsSkipped++
			metrics.PipelineRecords.WithLabelValues("review", "skipped").Inc()
			return nil
		}

		categories, ok := b.businessIndex[rec.BusinessID]
		if !ok {
			stats.ReviewsSkipped++
			metrics.PipelineRecords.WithLabelValues("review", "skipped").Inc()
			return nil
		}

		for _, cat := range categories {
			if reviewIndex[cat] == nil {
				reviewIndex[cat] = make(map[string]int)
			}
			reviewIndex[cat][rec.UserID]++
		}

		stats.ReviewsQualified++
		metrics.PipelineRecords.WithLabelValues("review", "kept").Inc()
		return nil
	}, func() {
		stats.ReviewsRead++
		stats.MalformedLines++
		stats.ReviewsSkipped++
		metrics.PipelineRecords.WithLabelValues("review", "skipped").Inc()
	})
	if err != nil {
		return nil, fmt.Errorf("review pass: %w", err)
	}
	return reviewIndex, nil
}

// writeBusinessArtifact materializes the consolidated business index.
func (b *Builder) writeBusinessArtifact() error {
	path := filepath.Join(b.cfg.OutputDir, BusinessIndexFile)
	raw, err := json.MarshalIndent(b.businessIndex, "", "  ")
	if err != nil {
		return fmt.Errorf("encode business index: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write business index: %w", err)
	}
	return nil
}

// writeReviewArtifact materializes the consolidated review index with the
// users of each category serialized in descending count order. The order is
// cosmetic, for human inspection; loading ignores it.
func writeReviewArtifact(path string, index map[string]map[string]int) error {
	categories := make([]string, 0, len(index))
	for cat := range index {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	var sb strings.Builder
	sb.WriteString("{\n")
	for ci, cat := range categories {
		users := index[cat]
		uids := make([]string, 0, len(users))
		for uid := range users {
			uids = append(uids, uid)
		}
		sort.Slice(uids, func(i, j int) bool {
			if users[uids[i]] != users[uids[j]] {
				return users[uids[i]] > users[uids[j]]
			}
			return uids[i] < uids[j]
		})

		key, err := json.Marshal(cat)
		if err != nil {
			return fmt.Errorf("encode category %q: %w", cat, err)
		}
		sb.WriteString("  ")
		sb.Write(key)
		sb.WriteString(": {")
		for ui, uid := range uids {
			ukey, err := json.Marshal(uid)
			if err != nil {
				return fmt.Errorf("encode user %q: %w", uid, err)
			}
			if ui > 0 {
				sb.WriteString(", ")
			}
			sb.Write(ukey)
			sb.WriteString(fmt.Sprintf(": %d", users[uid]))
		}
		sb.WriteString("}")
		if ci < len(categories)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n")

	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("write review index: %w", err)
	}
	return nil
}

// scanLines streams a file line by line. The callback owns per-record skip
// policy; only I/O-level failures propagate. A line longer than maxLineBytes
// is corrupt: it is drained without buffering, reported via oversized, and
// scanning continues with the next line.
func scanLines(ctx context.Context, path string, fn func(line []byte) error, oversized func()) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r := bufio.NewReaderSize(f, maxLineBytes)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := r.ReadSlice('\n')
		if errors.Is(err, bufio.ErrBufferFull) {
			for errors.Is(err, bufio.ErrBufferFull) {
				_, err = r.ReadSlice('\n')
			}
			oversized()
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return err
			}
			continue
		}

		if trimmed := bytes.TrimRight(line, "\r\n"); len(trimmed) > 0 {
			if cbErr := fn(trimmed); cbErr != nil {
				return cbErr
			}
		}

		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
