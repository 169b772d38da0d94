// SPDX-License-Identifier: MIT
// File: methods.go
// Role: neighbor-set mutation and queries.
// Concurrency:
//   - Mutations under mu write lock.
//   - Queries under mu read lock; returned slices are copies.
// Determinism:
//   - IDs() and Neighbors() are ascending.

package adjacency

import (
	"fmt"
	"sort"
)

// Link adds b to a's neighbor set only. It reports whether the set changed.
// Complexity: O(1).
func (g *Graph) Link(a, b int) (bool, error) {
	if a == b {
		return false, fmt.Errorf("Link(%d,%d): %w", a, b, ErrSelfLoop)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	set, ok := g.sets[a]
	if !ok {
		return false, fmt.Errorf("Link(%d,%d): item %d: %w", a, b, a, ErrItemNotFound)
	}
	if _, ok = g.sets[b]; !ok {
		return false, fmt.Errorf("Link(%d,%d): item %d: %w", a, b, b, ErrItemNotFound)
	}
	if _, has := set[b]; has {
		return false, nil
	}
	set[b] = struct{}{}

	return true, nil
}

// Unlink removes b from a's neighbor set only. Removing an absent neighbor
// is a no-op; an unknown a is an error.
func (g *Graph) Unlink(a, b int) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	set, ok := g.sets[a]
	if !ok {
		return false, fmt.Errorf("Unlink(%d,%d): item %d: %w", a, b, a, ErrItemNotFound)
	}
	if _, has := set[b]; !has {
		return false, nil
	}
	delete(set, b)

	return true, nil
}

// Retain replaces a's neighbor set with keep ∩ current neighbors and returns
// the removed IDs in ascending order.
// Complexity: O(deg(a) + len(keep)).
func (g *Graph) Retain(a int, keep []int) ([]int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	set, ok := g.sets[a]
	if !ok {
		return nil, fmt.Errorf("Retain(%d): %w", a, ErrItemNotFound)
	}
	want := make(map[int]struct{}, len(keep))
	for _, b := range keep {
		want[b] = struct{}{}
	}
	removed := make([]int, 0)
	for b := range set {
		if _, stay := want[b]; !stay {
			removed = append(removed, b)
		}
	}
	for _, b := range removed {
		delete(set, b)
	}
	sort.Ints(removed)

	return removed, nil
}

// Has reports whether b is in a's neighbor set.
func (g *Graph) Has(a, b int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.sets[a][b]
	return ok
}

// Contains reports whether id is one of the graph's items.
func (g *Graph) Contains(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.sets[id]
	return ok
}

// Degree is |neighbors(id)|; unknown IDs yield 0.
func (g *Graph) Degree(id int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.sets[id])
}

// Neighbors returns a sorted copy of id's neighbor set.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	set, ok := g.sets[id]
	if !ok {
		return nil, fmt.Errorf("Neighbors(%d): %w", id, ErrItemNotFound)
	}

	return sortedKeys(set), nil
}

// IDs returns the item IDs ascending.
func (g *Graph) IDs() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, len(g.ids))
	copy(out, g.ids)

	return out
}

// Len is the number of items.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.ids)
}

// Snapshot freezes the current state. Later mutations of g are not visible.
// Complexity: O(V + E log d).
func (g *Graph) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := make(Snapshot, len(g.ids))
	for _, id := range g.ids {
		s[id] = sortedKeys(g.sets[id])
	}

	return s
}

func sortedKeys(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}
