// SPDX-License-Identifier: MIT

// Package builder links a fixed item collection into an undirected
// relationship graph from two signals: shared categorical tags (attrs) and
// proximity in a 3-D embedding space (proximity), under per-item degree bounds.
//
// One entry point:
//
//	res, err := builder.Build(items, coords, themes, motifs,
//		builder.WithKMin(2), builder.WithKMax(15))
//
// The build runs five passes over an adjacency.Graph, in this order:
//
//  1. Similarity linking  — A→B for every B with Score(A,B) > 0.
//  2. Proximity linking   — A→B for the 2 nearest B by L2 distance.
//  3. Degree-cap trimming — keep the KMax best-scoring neighbors (ties: lower ID).
//  4. Symmetrization      — add B→A unless B is already at KMax.
//  5. Degree-floor backfill — top up items below KMin from a pre-sorted
//     candidate list; the back-edge is added only while the candidate is
//     below KMax.
//
// Guarantees:
//
//   - No self-loops, no parallel edges, deg ≤ KMax for every item.
//   - deg ≥ KMin whenever the candidate pool allows it.
//   - Determinism: identical inputs ⇒ identical Snapshot and Report, for any
//     worker count.
//   - One-way entries appear only where the reverse side sat at KMax; they are
//     reported (Report.OmittedBackEdges, Report.OneWayBackfills) and visible via
//     Snapshot.Asymmetric, never silently repaired.
//
// Errors:
//
//	ErrInvalidConstraints — kMin > kMax or a negative bound.
//	ErrMissingCoordinate  — an item without a coordinate (names the ID).
//
// Items that stay below KMin are listed in Report.UnderFloor and logged at
// warn level; they never fail the build.
package builder
