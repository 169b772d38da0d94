// SPDX-License-Identifier: MIT
// Package: versegraph/builder
//
// impl_trim.go — pass 3, degree-cap trimming.
//
// Contract:
//   • deg(A) > kMax ⇒ keep the kMax best neighbors by descending score,
//     ties by ascending ID.
//   • Drops touch A's set only; B may keep listing A (pass 4 sees that).

package builder

import (
	"fmt"

	"go.uber.org/zap"
)

// trimToCeiling runs pass 3.
// Complexity: O(Σ d log d) over trimmed items.
func trimToCeiling(st *buildState) error {
	kMax := st.cfg.kMax
	for _, a := range st.ids {
		if st.graph.Degree(a) <= kMax {
			continue
		}
		nb, err := st.neighbors(a)
		if err != nil {
			return err
		}
		keep := st.rankByScore(a, nb)[:kMax]
		removed, err := st.graph.Retain(a, keep)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildFailed, err)
		}
		st.report.TrimmedLinks += len(removed)
		st.cfg.logger.Debug("trimmed to ceiling",
			zap.Int("item", a), zap.Ints("dropped", removed))
	}

	return nil
}
