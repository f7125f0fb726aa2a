// Forkcast - Restaurant Recommendation and Category Preference Analytics
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

package recommend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/forkcast/forkcast/internal/catalog"
	"github.com/forkcast/forkcast/internal/metrics"
	"github.com/forkcast/forkcast/internal/vocab"
)

// ErrUnknownUser is returned when a recommendation is requested for a user
// id absent from the reference population.
var ErrUnknownUser = errors.New("unknown reference user")

// Engine wires the vector codec, neighbor index, aggregator and ranker into
// the end-to-end recommendation flow.
//
// Every field is read-only after NewEngine returns, so one Engine serves
// any number of concurrent requests without locking. Per-request state
// (click vectors, neighbor sets, profiles) is freshly allocated each call.
type Engine struct {
	cfg    Config
	voc    *vocab.Vocabulary
	cat    *catalog.Catalog
	index  NeighborIndex
	logger zerolog.Logger
}

// NewEngine creates a recommendation engine over fully built, read-only
// inputs. An empty vocabulary or catalog is a configuration error: the
// engine must not serve requests against a dimension space of zero.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg Config, voc *vocab.Vocabulary, cat *catalog.Catalog, index NeighborIndex, logger zerolog.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if voc == nil || voc.Len() == 0 {
		return nil, errors.New("vocabulary is empty")
	}
	if cat == nil || cat.Len() == 0 {
		return nil, errors.New("business catalog is empty")
	}
	if index == nil {
		return nil, errors.New("neighbor index is nil")
	}

	logger.Info().
		Int("dimensions", voc.Len()).
		Int("businesses", cat.Len()).
		Int("reference_users", index.Len()).
		Int("k", cfg.K).
		Msg("Recommendation engine ready")

	return &Engine{
		cfg:    cfg,
		voc:    voc,
		cat:    cat,
		index:  index,
		logger: logger,
	}, nil
}

// Recommend produces up to limit ranked businesses for a session's clicked
// business ids. A limit below one falls back to the configured TopN.
//
// Clicked businesses are filtered from the result; the remainder keeps the
// full ranking order. A session with no recognizable clicks degrades
// gracefully: every similarity is zero and the ranking preserves catalog
// order with zero scores.
func (e *Engine) Recommend(ctx context.Context, clicks []string, limit int) ([]RankedBusiness, error) {
	if limit < 1 {
		limit = e.cfg.TopN
	}

	clickVec := EncodeClicks(clicks, e.cat, e.voc)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scanStart := time.Now()
	neighbors := e.index.Find(clickVec, e.cfg.K)
	metrics.NeighborScanDuration.Observe(time.Since(scanStart).Seconds())

	profile := clickVec
	if len(neighbors) > 0 {
		profile = Aggregate(neighbors, e.index, e.voc.Len())
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ranked := e.rankFiltered(profile, clicks)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	e.logger.Debug().
		Int("clicks", len(clicks)).
		Int("neighbors", len(neighbors)).
		Int("results", len(ranked)).
		Msg("Recommendation served")

	return ranked, nil
}

// RecommendForUser ranks the catalog against a reference user's own stored
// preference vector. This is the batch mode used to precompute top-N lists
// for every known user.
func (e *Engine) RecommendForUser(ctx context.Context, userID string, limit int) ([]RankedBusiness, error) {
	vec, ok := e.index.Vector(userID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownUser, userID)
	}
	if limit < 1 {
		limit = e.cfg.TopN
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ranked := Rank(vec, e.cat, e.voc)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

// Catalog exposes the engine's read-only catalog for handlers that enrich
// results with business metadata.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.cat
}

// rankFiltered ranks the full catalog and drops businesses already clicked
// in the session.
func (e *Engine) rankFiltered(profile Vector, clicks []string) []RankedBusiness {
	clicked := make(map[string]struct{}, len(clicks))
	for _, id := range clicks {
		clicked[id] = struct{}{}
	}

	ranked := Rank(profile, e.cat, e.voc)
	metrics.RankedBusinesses.Observe(float64(len(ranked)))

	out := ranked[:0]
	for _, r := range ranked {
		if _, ok := clicked[r.BusinessID]; ok {
			continue
		}
		out = append(out, r)
	}
	return out
}
