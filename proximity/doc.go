// SPDX-License-Identifier: MIT

// Package proximity ranks items by Euclidean distance between their 3-D
// embedding coordinates.
//
// A Ranker is constructed once per build from the item list and a coordinate
// table; construction is where a missing coordinate surfaces
// (ErrMissingCoordinate), so Nearest itself never fails.
//
// Ordering:
//   - ascending L2 distance,
//   - equal distances resolved by ascending item ID.
//
// Complexity: Nearest is O(n log n) per query (full sort of the pool), which
// is fine for corpora of tens to low hundreds of items.
package proximity
