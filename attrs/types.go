// SPDX-License-Identifier: MIT
// Package: versegraph/attrs
//
// types.go — TagSet and the fixed scoring weights.

package attrs

import "sort"

// Scoring weights for shared tags.
const (
	// ThemeWeight is the score contribution of one shared theme.
	ThemeWeight = 3
	// MotifWeight is the score contribution of one shared motif.
	MotifWeight = 2
)

// TagSet is an unordered set of labels. The zero value (nil) is an empty set
// and is safe to query.
type TagSet map[string]struct{}

// NewTagSet collapses labels into a set. Empty labels are kept verbatim;
// the corpus decides what a label is.
func NewTagSet(labels ...string) TagSet {
	s := make(TagSet, len(labels))
	for _, l := range labels {
		s[l] = struct{}{}
	}

	return s
}

// Has reports membership of label.
func (s TagSet) Has(label string) bool {
	_, ok := s[label]
	return ok
}

// Len is the number of distinct labels.
func (s TagSet) Len() int { return len(s) }

// Labels returns the labels sorted ascending.
func (s TagSet) Labels() []string {
	out := make([]string, 0, len(s))
	for l := range s {
		out = append(out, l)
	}
	sort.Strings(out)

	return out
}

// IntersectCount counts labels present in both sets.
// Iterates the smaller set: O(min(|s|,|o|)).
func (s TagSet) IntersectCount(o TagSet) int {
	small, big := s, o
	if len(big) < len(small) {
		small, big = big, small
	}
	n := 0
	for l := range small {
		if _, ok := big[l]; ok {
			n++
		}
	}

	return n
}

// Intersect returns the shared labels sorted ascending.
func (s TagSet) Intersect(o TagSet) []string {
	out := make([]string, 0)
	for l := range s {
		if _, ok := o[l]; ok {
			out = append(out, l)
		}
	}
	sort.Strings(out)

	return out
}
