// SPDX-License-Identifier: MIT
// Package: versegraph/builder
//
// impl_similarity.go — pass 1, similarity linking.
//
// Contract:
//   • For every ordered pair (A,B), A≠B, Score(A,B) > 0 ⇒ B joins A's set.
//   • One-directional at this point; Score is symmetric so the pair usually
//     appears both ways, but pass 3 may break that.
//   • Scores are computed in parallel per A; links are applied in ID order.

package builder

// linkBySimilarity runs pass 1.
// Complexity: O(n²) Score calls.
func linkBySimilarity(st *buildState) error {
	found, err := st.fanOut(func(a int) ([]int, error) {
		var hits []int
		for _, b := range st.ids {
			if b != a && st.scorer.Score(a, b) > 0 {
				hits = append(hits, b)
			}
		}
		return hits, nil
	})
	if err != nil {
		return err
	}

	for i, a := range st.ids {
		for _, b := range found[i] {
			added, err := st.link(a, b)
			if err != nil {
				return err
			}
			if added {
				st.report.SimilarityLinks++
			}
		}
	}

	return nil
}
