// SPDX-License-Identifier: MIT
// File: snapshot.go
// Role: immutable build output and the read-only views renderers need.
// AI-HINT (file):
//   - Every neighbor list is ascending and unique.
//   - Edges() collapses A→B / B→A into one pair {min,max}, the shape a line
//     renderer consumes.
//   - Asymmetric() lists the one-way entries left by the degree ceiling.

package adjacency

import "sort"

// Snapshot maps each item to its ascending neighbor list.
type Snapshot map[int][]int

// IDs returns the items ascending.
func (s Snapshot) IDs() []int {
	out := make([]int, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Ints(out)

	return out
}

// Neighbors returns a copy of id's list (nil for unknown IDs).
func (s Snapshot) Neighbors(id int) []int {
	nb, ok := s[id]
	if !ok {
		return nil
	}
	out := make([]int, len(nb))
	copy(out, nb)

	return out
}

// Degree is len(s[id]).
func (s Snapshot) Degree(id int) int { return len(s[id]) }

// Has reports whether b is listed under a. Binary search on the sorted list.
func (s Snapshot) Has(a, b int) bool {
	nb := s[a]
	i := sort.SearchInts(nb, b)

	return i < len(nb) && nb[i] == b
}

// Edges returns every linked pair once as {lo, hi}, sorted lexicographically.
// A one-way entry still yields its pair.
func (s Snapshot) Edges() [][2]int {
	seen := make(map[[2]int]struct{})
	out := make([][2]int, 0)
	for a, nb := range s {
		for _, b := range nb {
			key := [2]int{a, b}
			if b < a {
				key = [2]int{b, a}
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, key)
		}
	}
	sortPairs(out)

	return out
}

// Asymmetric returns directed pairs {a, b} where b ∈ s[a] but a ∉ s[b].
func (s Snapshot) Asymmetric() [][2]int {
	out := make([][2]int, 0)
	for a, nb := range s {
		for _, b := range nb {
			if !s.Has(b, a) {
				out = append(out, [2]int{a, b})
			}
		}
	}
	sortPairs(out)

	return out
}

// IsSymmetric reports whether every entry has its reverse.
func (s Snapshot) IsSymmetric() bool { return len(s.Asymmetric()) == 0 }

// MaxDegree is the largest list length (0 when empty).
func (s Snapshot) MaxDegree() int {
	m := 0
	for _, nb := range s {
		if len(nb) > m {
			m = len(nb)
		}
	}

	return m
}

// MinDegree is the smallest list length (0 when empty).
func (s Snapshot) MinDegree() int {
	if len(s) == 0 {
		return 0
	}
	m := -1
	for _, nb := range s {
		if m < 0 || len(nb) < m {
			m = len(nb)
		}
	}

	return m
}

func sortPairs(p [][2]int) {
	sort.Slice(p, func(i, j int) bool {
		if p[i][0] != p[j][0] {
			return p[i][0] < p[j][0]
		}
		return p[i][1] < p[j][1]
	})
}
