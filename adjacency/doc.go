// SPDX-License-Identifier: MIT

// Package adjacency provides the neighbor-set graph that versegraph builds:
// for every item a set of neighbor IDs, with one-directional Link/Unlink
// primitives so a builder can stage asymmetric states between passes.
//
// Two types:
//
//	Graph    — mutable, guarded by a sync.RWMutex, owned by one build.
//	Snapshot — immutable map[id] → ascending neighbor IDs handed to callers.
//
// Guarantees:
//   - No self-loops: Link(v, v) returns ErrSelfLoop.
//   - No parallel edges: neighbor sets are sets.
//   - Deterministic iteration: IDs(), Neighbors() and every Snapshot accessor
//     return ascending results.
//
// Errors:
//
//	ErrItemNotFound — an ID outside the fixed item set.
//	ErrSelfLoop     — Link(v, v).
package adjacency
