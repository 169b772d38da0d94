// SPDX-License-Identifier: MIT
// Package: versegraph/attrs
//
// index.go — read-only theme/motif lookup.
//
// Contract:
//   • NewIndex copies the caller tables; later caller mutations are not seen.
//   • Unknown IDs resolve to empty sets (never an error).
//   • No locking: the Index is immutable after construction.

package attrs

// Index is the AttributeIndex: two independent tag tables keyed by item ID.
type Index struct {
	themes map[int]TagSet
	motifs map[int]TagSet
}

// NewIndex builds an Index from raw label tables. Either table may be nil.
// Complexity: O(total labels).
func NewIndex(themes, motifs map[int][]string) *Index {
	return &Index{
		themes: toSets(themes),
		motifs: toSets(motifs),
	}
}

func toSets(table map[int][]string) map[int]TagSet {
	out := make(map[int]TagSet, len(table))
	for id, labels := range table {
		out[id] = NewTagSet(labels...)
	}

	return out
}

// Themes returns the theme set of id (nil for unknown IDs).
func (x *Index) Themes(id int) TagSet { return x.themes[id] }

// Motifs returns the motif set of id (nil for unknown IDs).
func (x *Index) Motifs(id int) TagSet { return x.motifs[id] }

// Len is the number of IDs carrying at least one table entry.
func (x *Index) Len() int {
	seen := make(map[int]struct{}, len(x.themes)+len(x.motifs))
	for id := range x.themes {
		seen[id] = struct{}{}
	}
	for id := range x.motifs {
		seen[id] = struct{}{}
	}

	return len(seen)
}

// SharedThemes lists the themes a and b have in common, sorted.
func (x *Index) SharedThemes(a, b int) []string {
	return x.themes[a].Intersect(x.themes[b])
}

// SharedMotifs lists the motifs a and b have in common, sorted.
func (x *Index) SharedMotifs(a, b int) []string {
	return x.motifs[a].Intersect(x.motifs[b])
}
