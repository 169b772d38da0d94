// SPDX-License-Identifier: MIT
// Package: versegraph/builder
//
// impl_backfill.go — pass 5, degree-floor backfill.
//
// Contract:
//   • For A ascending with deg(A) < kMin: candidates are all B ≠ A not in
//     neighbors(A), ranked once by descending score then ascending ID
//     (score 0 is eligible). They are consumed in order until kMin.
//   • Each pick adds B to A; A joins B only while deg(B) < kMax.
//   • Running out of candidates is not an error; Build reports the item.
//
// While A is being filled only A's set and its picks change, and no pick can
// re-enter A's candidate pool, so one ranking per item is enough.

package builder

import "go.uber.org/zap"

// backfillToFloor runs pass 5.
// Complexity: O(u · n log n) for u under-floor items.
func backfillToFloor(st *buildState) error {
	kMin, kMax := st.cfg.kMin, st.cfg.kMax
	for _, a := range st.ids {
		if st.graph.Degree(a) >= kMin {
			continue
		}
		for _, b := range st.backfillCandidates(a) {
			if st.graph.Degree(a) >= kMin {
				break
			}
			if _, err := st.link(a, b); err != nil {
				return err
			}
			st.report.BackfillLinks++

			if st.graph.Has(b, a) {
				continue
			}
			if st.graph.Degree(b) >= kMax {
				st.report.OneWayBackfills++
				st.cfg.logger.Debug("backfill left one-way",
					zap.Int("item", a), zap.Int("candidate", b))
				continue
			}
			if _, err := st.link(b, a); err != nil {
				return err
			}
		}
	}

	return nil
}

// backfillCandidates returns the ranked pool for a.
func (st *buildState) backfillCandidates(a int) []int {
	cands := make([]int, 0, len(st.ids))
	for _, b := range st.ids {
		if b != a && !st.graph.Has(a, b) {
			cands = append(cands, b)
		}
	}

	return st.rankByScore(a, cands)
}
