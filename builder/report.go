// SPDX-License-Identifier: MIT
// Package: versegraph/builder
//
// report.go — build diagnostics.

package builder

// Report counts what each pass did and lists the non-fatal conditions.
// Link counters count one-directional entries actually added or removed.
type Report struct {
	SimilarityLinks int // pass 1 entries added
	ProximityLinks  int // pass 2 entries added (not already present)
	TrimmedLinks    int // pass 3 entries dropped
	BackEdges       int // pass 4 reverse entries added

	// OmittedBackEdges counts pass 4 reverse entries skipped because the
	// target was already at kMax.
	OmittedBackEdges int

	BackfillLinks int // pass 5 entries added on the under-floor side

	// OneWayBackfills counts pass 5 links whose reverse could not be added
	// because the candidate was at kMax.
	OneWayBackfills int

	// UnderFloor lists items that finished below kMin (candidate pool
	// exhausted), ascending.
	UnderFloor []int
}

// Satisfied reports whether every item reached kMin.
func (r Report) Satisfied() bool { return len(r.UnderFloor) == 0 }
