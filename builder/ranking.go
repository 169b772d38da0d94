// SPDX-License-Identifier: MIT
// Package: versegraph/builder
//
// ranking.go — score ordering shared by trimming and backfill, and the
// per-item fan-out used by the read-only passes.

package builder

import (
	"sort"

	"golang.org/x/sync/errgroup"
)

// rankByScore orders cands by descending Score(a, ·), ties by ascending ID.
// The order is total, so the result is deterministic. cands is sorted in place.
// Complexity: O(c log c) comparisons, scores computed once.
func (st *buildState) rankByScore(a int, cands []int) []int {
	scores := make(map[int]int, len(cands))
	for _, b := range cands {
		scores[b] = st.scorer.Score(a, b)
	}
	sort.Slice(cands, func(i, j int) bool {
		si, sj := scores[cands[i]], scores[cands[j]]
		if si != sj {
			return si > sj
		}
		return cands[i] < cands[j]
	})

	return cands
}

// fanOut evaluates fn for every item on at most cfg.workers goroutines.
// Slot i of the result belongs to st.ids[i]; workers never share a slot, so
// merging in slot order keeps the output independent of scheduling.
func (st *buildState) fanOut(fn func(a int) ([]int, error)) ([][]int, error) {
	out := make([][]int, len(st.ids))

	var g errgroup.Group
	g.SetLimit(st.cfg.workers)
	for i, a := range st.ids {
		i, a := i, a
		g.Go(func() error {
			found, err := fn(a)
			if err != nil {
				return err
			}
			out[i] = found
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
