// SPDX-License-Identifier: MIT
// Package: versegraph/builder
//
// impl_proximity.go — pass 2, proximity linking.
//
// Contract:
//   • Every A gains its cfg.nearest closest items (L2, ties by lower ID).
//   • Entries already present from pass 1 are not double counted.

package builder

// linkByProximity runs pass 2.
// Complexity: O(n² log n) over all queries.
func linkByProximity(st *buildState) error {
	found, err := st.fanOut(func(a int) ([]int, error) {
		return st.ranker.Nearest(a, st.cfg.nearest)
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
				st.report.ProximityLinks++
			}
		}
	}

	return nil
}
