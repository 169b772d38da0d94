// SPDX-License-Identifier: MIT
// Package: versegraph/builder
//
// impl_symmetrize.go — pass 4, symmetrization.
//
// Contract:
//   • For A ascending and each B ∈ neighbors(A) ascending: A ∉ neighbors(B)
//     and deg(B) < kMax ⇒ add A to B.
//   • At kMax the reverse entry is omitted and counted; the trimming decisions
//     of pass 3 are never reopened.

package builder

import "go.uber.org/zap"

// symmetrize runs pass 4.
// Complexity: O(E).
func symmetrize(st *buildState) error {
	kMax := st.cfg.kMax
	for _, a := range st.ids {
		nb, err := st.neighbors(a)
		if err != nil {
			return err
		}
		for _, b := range nb {
			if st.graph.Has(b, a) {
				continue
			}
			if st.graph.Degree(b) >= kMax {
				st.report.OmittedBackEdges++
				st.cfg.logger.Debug("back-edge omitted at ceiling",
					zap.Int("from", b), zap.Int("to", a))
				continue
			}
			if _, err = st.link(b, a); err != nil {
				return err
			}
			st.report.BackEdges++
		}
	}

	return nil
}
