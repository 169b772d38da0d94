// SPDX-License-Identifier: MIT
// Package: versegraph/builder
//
// api.go — the public entry point.
//
// Design contract:
//   - One orchestrator: Build(items, coords, themes, motifs, opts...).
//   - All inputs are parameters; nothing is read from package state.
//   - Validation happens before any pass; a failed build publishes nothing.
//   - Passes run in a fixed order listed in buildPasses.

package builder

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/versegraph/adjacency"
	"github.com/katalvlaran/versegraph/attrs"
	"github.com/katalvlaran/versegraph/proximity"
)

// Result is the output of one build.
type Result struct {
	// Graph maps each item to its ascending neighbor list.
	Graph adjacency.Snapshot
	// Report carries per-pass counters and non-fatal conditions.
	Report Report
}

// pass is one construction step over the shared build state.
type pass struct {
	name string
	run  func(st *buildState) error
}

// buildPasses is the fixed pass order.
var buildPasses = []pass{
	{MethodSimilarity, linkBySimilarity},
	{MethodProximity, linkByProximity},
	{MethodTrim, trimToCeiling},
	{MethodSymmetrize, symmetrize},
	{MethodBackfill, backfillToFloor},
}

// buildState is owned by a single Build call.
type buildState struct {
	cfg    builderConfig
	ids    []int // distinct, ascending
	graph  *adjacency.Graph
	scorer attrs.Scorer
	ranker *proximity.Ranker
	report Report
}

// Build links items into a degree-bounded relationship graph.
//
// coords must hold a point for every item (else ErrMissingCoordinate).
// themes and motifs may omit items; a missing entry is an empty tag set.
// Duplicate IDs in items are collapsed.
//
// Complexity: O(n²·t) for pass 1 (t = tag set size), O(n² log n) for pass 2
// and for building backfill candidate lists, O(n·d log d) for passes 3-4.
func Build(
	items []int,
	coords map[int]proximity.Point,
	themes, motifs map[int][]string,
	opts ...BuilderOption,
) (*Result, error) {
	cfg := newBuilderConfig(opts...)
	if err := validateConstraints(MethodBuild, cfg.kMin, cfg.kMax); err != nil {
		return nil, err
	}

	ranker, err := proximity.NewRanker(items, coords)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuild, err)
	}

	g := adjacency.New(items)
	st := &buildState{
		cfg:    cfg,
		ids:    g.IDs(),
		graph:  g,
		scorer: attrs.NewScorer(attrs.NewIndex(themes, motifs)),
		ranker: ranker,
	}

	log := cfg.logger.With(zap.Int("items", len(st.ids)), zap.Int("k_min", cfg.kMin), zap.Int("k_max", cfg.kMax))
	for _, p := range buildPasses {
		start := time.Now()
		if err = p.run(st); err != nil {
			return nil, fmt.Errorf("%s: %s: %w", MethodBuild, p.name, err)
		}
		log.Debug("pass complete", zap.String("pass", p.name), zap.Duration("took", time.Since(start)))
	}

	snap := g.Snapshot()
	st.report.UnderFloor = underFloor(snap, st.ids, cfg.kMin)
	for _, id := range st.report.UnderFloor {
		log.Warn("item below degree floor",
			zap.Int("item", id), zap.Int("degree", snap.Degree(id)))
	}
	log.Info("graph built",
		zap.Int("edges", len(snap.Edges())),
		zap.Int("omitted_back_edges", st.report.OmittedBackEdges),
		zap.Int("one_way_backfills", st.report.OneWayBackfills),
		zap.Int("under_floor", len(st.report.UnderFloor)))

	return &Result{Graph: snap, Report: st.report}, nil
}

// underFloor lists items whose final degree is below kMin, ascending.
func underFloor(s adjacency.Snapshot, ids []int, kMin int) []int {
	out := make([]int, 0)
	for _, id := range ids {
		if s.Degree(id) < kMin {
			out = append(out, id)
		}
	}

	return out
}

// link wraps adjacency errors as build failures.
func (st *buildState) link(a, b int) (bool, error) {
	added, err := st.graph.Link(a, b)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildFailed, err)
	}

	return added, nil
}

// neighbors wraps adjacency errors as build failures.
func (st *buildState) neighbors(a int) ([]int, error) {
	nb, err := st.graph.Neighbors(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildFailed, err)
	}

	return nb, nil
}
