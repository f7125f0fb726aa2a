// Forkcast - Restaurant Recommendation and Category Preference Analytics
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

// Command indexer builds the category and business index artifacts from raw
// business and review JSONL dumps. It is run offline; the server loads the
// artifacts it writes.
//
// Per-record problems (malformed lines, unknown categories, low-star
// reviews) are counted and skipped. Only I/O failures exit non-zero.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/forkcast/forkcast/internal/etl"
	"github.com/forkcast/forkcast/internal/logging"
	"github.com/forkcast/forkcast/internal/vocab"
)

func main() {
	cfg := etl.DefaultConfig()
	flag.StringVar(&cfg.BusinessPath, "businesses", "", "path to business JSONL dump (required)")
	flag.StringVar(&cfg.ReviewPath, "reviews", "", "path to review JSONL dump (required)")
	flag.StringVar(&cfg.OutputDir, "out", ".", "output directory for index artifacts")
	flag.IntVar(&cfg.ChunkCapacity, "chunk-capacity", cfg.ChunkCapacity, "max keys per in-memory chunk before a shard is flushed")
	flag.Float64Var(&cfg.MinStars, "min-stars", cfg.MinStars, "minimum review stars to count toward a user's preferences")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	logging.Init(logging.Config{Level: *logLevel, Format: "console", Output: os.Stderr})

	if cfg.BusinessPath == "" || cfg.ReviewPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	builder, err := etl.NewBuilder(cfg, vocab.Food(), logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Invalid pipeline configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	stats, err := builder.Run(ctx)
	if err != nil {
		logging.Fatal().Err(err).Msg("Index build failed")
	}

	logging.Info().
		Dur("elapsed", time.Since(start)).
		Int("businesses_kept", stats.BusinessesKept).
		Int("businesses_skipped", stats.BusinessesSkipped).
		Int("reviews_qualified", stats.ReviewsQualified).
		Int("reviews_skipped", stats.ReviewsSkipped).
		Int("malformed_lines", stats.MalformedLines).
		Int("shards_written", stats.ShardsWritten).
		Msg("Index build complete")
}
