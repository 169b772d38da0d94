// SPDX-License-Identifier: MIT
// Package: versegraph/adjacency
//
// types.go — Graph type, constructor and sentinel errors.

package adjacency

import (
	"errors"
	"sort"
	"sync"
)

// Sentinel errors for graph mutations and queries.
var (
	// ErrItemNotFound indicates an ID that is not part of the graph.
	ErrItemNotFound = errors.New("adjacency: item not found")

	// ErrSelfLoop indicates an attempt to make an item its own neighbor.
	ErrSelfLoop = errors.New("adjacency: self-loop not allowed")
)

// Graph is the working AdjacencyGraph. The item set is fixed at New;
// only neighbor sets change.
type Graph struct {
	mu  sync.RWMutex
	ids []int // ascending, fixed at construction

	// sets[a][b] = struct{}{} means b is a neighbor of a.
	sets map[int]map[int]struct{}
}

// New creates a Graph with an empty neighbor set for every distinct ID.
// Complexity: O(n log n).
func New(ids []int) *Graph {
	g := &Graph{sets: make(map[int]map[int]struct{}, len(ids))}
	for _, id := range ids {
		if _, dup := g.sets[id]; dup {
			continue
		}
		g.sets[id] = make(map[int]struct{})
		g.ids = append(g.ids, id)
	}
	sort.Ints(g.ids)

	return g
}
