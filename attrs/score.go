// SPDX-License-Identifier: MIT
// Package: versegraph/attrs
//
// score.go — SimilarityScorer.

package attrs

// Scorer computes the weighted tag overlap between two items.
// It holds no mutable state and may be shared across goroutines.
type Scorer struct {
	idx *Index
}

// NewScorer binds a Scorer to idx. A nil idx scores everything 0.
func NewScorer(idx *Index) Scorer {
	if idx == nil {
		idx = NewIndex(nil, nil)
	}

	return Scorer{idx: idx}
}

// Score returns ThemeWeight·|shared themes| + MotifWeight·|shared motifs|.
// Symmetric and ≥ 0. Complexity: O(min tag set size).
func (s Scorer) Score(a, b int) int {
	return ThemeWeight*s.idx.themes[a].IntersectCount(s.idx.themes[b]) +
		MotifWeight*s.idx.motifs[a].IntersectCount(s.idx.motifs[b])
}

// Index exposes the underlying AttributeIndex.
func (s Scorer) Index() *Index { return s.idx }
