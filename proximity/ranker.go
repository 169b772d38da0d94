// SPDX-License-Identifier: MIT
// Package: versegraph/proximity
//
// ranker.go — ProximityRanker.
//
// Contract:
//   • NewRanker validates coverage: every item must have a coordinate.
//     The first missing ID in ascending order is reported.
//   • Nearest excludes the query item; k ≤ 0 yields nil; k > pool yields the pool.
//   • Read-only after construction; safe for concurrent queries.

package proximity

import (
	"fmt"
	"sort"
)

const methodNewRanker = "NewRanker"

// Ranker answers k-nearest queries over a fixed item pool.
type Ranker struct {
	ids    []int // distinct, ascending
	points map[int]Point
}

// NewRanker snapshots the coordinates of items. Duplicate IDs collapse.
func NewRanker(items []int, coords map[int]Point) (*Ranker, error) {
	ids := uniqueSorted(items)
	points := make(map[int]Point, len(ids))
	for _, id := range ids {
		p, ok := coords[id]
		if !ok {
			return nil, fmt.Errorf("%s: item %d: %w", methodNewRanker, id, ErrMissingCoordinate)
		}
		if !p.finite() {
			return nil, fmt.Errorf("%s: item %d: %w", methodNewRanker, id, ErrInvalidCoordinate)
		}
		points[id] = p
	}

	return &Ranker{ids: ids, points: points}, nil
}

// Len is the pool size.
func (r *Ranker) Len() int { return len(r.ids) }

// Point returns the coordinate of id.
func (r *Ranker) Point(id int) (Point, bool) {
	p, ok := r.points[id]
	return p, ok
}

// Nearest returns the IDs of the k closest items to id, closest first.
func (r *Ranker) Nearest(id, k int) ([]int, error) {
	ranked, err := r.Rank(id, k)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(ranked))
	for i, n := range ranked {
		out[i] = n.ID
	}

	return out, nil
}

// Rank is Nearest with distances attached.
func (r *Ranker) Rank(id, k int) ([]Neighbor, error) {
	origin, ok := r.points[id]
	if !ok {
		return nil, fmt.Errorf("Rank: item %d: %w", id, ErrItemNotFound)
	}
	if k <= 0 {
		return nil, nil
	}

	pool := make([]Neighbor, 0, len(r.ids)-1)
	for _, other := range r.ids {
		if other == id {
			continue
		}
		pool = append(pool, Neighbor{ID: other, Distance: Distance(origin, r.points[other])})
	}
	// r.ids is ascending, so a stable sort on distance keeps lower IDs first on ties.
	sort.SliceStable(pool, func(i, j int) bool { return pool[i].Distance < pool[j].Distance })

	if k < len(pool) {
		pool = pool[:k]
	}

	return pool, nil
}

func uniqueSorted(items []int) []int {
	seen := make(map[int]struct{}, len(items))
	out := make([]int, 0, len(items))
	for _, id := range items {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Ints(out)

	return out
}
