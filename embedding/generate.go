// SPDX-License-Identifier: MIT
// Package: versegraph/embedding
//
// generate.go — fill missing poem positions from line embeddings.
//
// Contract:
//   • existing is never mutated; the result is a fresh map.
//   • Poems with a position are counted in Summary.Existing, not re-embedded.
//   • Per-poem failures are logged and counted, never returned.
//   • Only context cancellation aborts the run.

package embedding

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/versegraph/dataset"
	"github.com/katalvlaran/versegraph/proximity"
)

// Summary counts what a Generate run did.
type Summary struct {
	Generated int   // new positions
	Existing  int   // poems that already had a position
	Skipped   int   // poems whose embedding failed
	Failed    []int // IDs of skipped poems, ascending
}

// Generate embeds every poem missing from existing and returns the merged
// position table.
func Generate(
	ctx context.Context,
	emb Embedder,
	poems []dataset.Poem,
	existing map[int]proximity.Point,
	opts ...Option,
) (map[int]proximity.Point, Summary, error) {
	cfg := newGenerateConfig(opts...)
	log := cfg.logger

	out := make(map[int]proximity.Point, len(existing)+len(poems))
	for id, p := range existing {
		out[id] = p
	}

	var sum Summary
	todo := make([]dataset.Poem, 0, len(poems))
	for _, p := range poems {
		if _, ok := existing[p.ID]; ok {
			sum.Existing++
			log.Debug("position exists", zap.Int("poem", p.ID))
			continue
		}
		todo = append(todo, p)
	}

	points := make([]proximity.Point, len(todo))
	errs := make([]error, len(todo))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for i := range todo {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			points[i], errs[i] = embedPoem(gctx, emb, todo[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, Summary{}, fmt.Errorf("Generate: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, Summary{}, fmt.Errorf("Generate: %w", err)
	}

	for i, p := range todo {
		if errs[i] != nil {
			sum.Skipped++
			sum.Failed = append(sum.Failed, p.ID)
			log.Warn("poem skipped", zap.Int("poem", p.ID), zap.Error(errs[i]))
			continue
		}
		out[p.ID] = points[i]
		sum.Generated++
		log.Debug("position generated",
			zap.Int("poem", p.ID),
			zap.Float64("x", points[i].X),
			zap.Float64("y", points[i].Y),
			zap.Float64("z", points[i].Z),
		)
	}
	sort.Ints(sum.Failed)

	log.Info("coordinates generated",
		zap.Int("generated", sum.Generated),
		zap.Int("existing", sum.Existing),
		zap.Int("skipped", sum.Skipped),
	)

	return out, sum, nil
}

func embedPoem(ctx context.Context, emb Embedder, p dataset.Poem) (proximity.Point, error) {
	lines := p.Lines()
	if len(lines) == 0 {
		return proximity.Point{}, ErrNoLines
	}
	vectors, err := emb.EmbedBatch(ctx, lines)
	if err != nil {
		return proximity.Point{}, err
	}
	if len(vectors) != len(lines) {
		return proximity.Point{}, fmt.Errorf("%d lines, %d vectors: %w", len(lines), len(vectors), ErrCountMismatch)
	}

	return Project(vectors)
}

// Project averages vectors component-wise and returns the first three
// dimensions of the mean.
func Project(vectors [][]float32) (proximity.Point, error) {
	if len(vectors) == 0 {
		return proximity.Point{}, ErrEmptyResponse
	}
	dims := len(vectors[0])
	for _, v := range vectors[1:] {
		if len(v) != dims {
			return proximity.Point{}, ErrInconsistentDims
		}
	}
	if dims < 3 {
		return proximity.Point{}, fmt.Errorf("got %d: %w", dims, ErrTooFewDims)
	}

	var mean [3]float64
	for _, v := range vectors {
		for d := 0; d < 3; d++ {
			mean[d] += float64(v[d])
		}
	}
	n := float64(len(vectors))

	return proximity.Point{X: mean[0] / n, Y: mean[1] / n, Z: mean[2] / n}, nil
}
