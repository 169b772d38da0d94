// SPDX-License-Identifier: MIT

// Package attrs holds the categorical side of versegraph: per-item tag sets
// (themes and motifs) and the weighted overlap score computed from them.
//
// An Index is built once from two caller-owned tables and is read-only
// afterwards; every method is safe for concurrent use.
//
//	idx := attrs.NewIndex(themes, motifs)
//	s := attrs.NewScorer(idx)
//	s.Score(1, 2) // 3·|themes ∩| + 2·|motifs ∩|
//
// Missing entries behave as empty sets. Labels compare exactly.
package attrs
