// SPDX-License-Identifier: MIT
// Package builder defines shared constants used by the build passes, ensuring
// consistent defaults and error prefixes.
package builder

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors and log entries with the pass name.
//-----------------------------------------------------------------------------

const (
	// MethodBuild is the canonical name of the public entry point.
	MethodBuild = "Build"
	// MethodSimilarity is the canonical name of pass 1.
	MethodSimilarity = "SimilarityLinking"
	// MethodProximity is the canonical name of pass 2.
	MethodProximity = "ProximityLinking"
	// MethodTrim is the canonical name of pass 3.
	MethodTrim = "DegreeCapTrimming"
	// MethodSymmetrize is the canonical name of pass 4.
	MethodSymmetrize = "Symmetrization"
	// MethodBackfill is the canonical name of pass 5.
	MethodBackfill = "DegreeFloorBackfill"
)

//-----------------------------------------------------------------------------
// Degree Defaults
//-----------------------------------------------------------------------------

// DefaultKMin is the degree floor applied when WithKMin is not given.
const DefaultKMin = 2

// DefaultKMax is the degree ceiling applied when WithKMax is not given.
const DefaultKMax = 15

// DefaultNearest is how many spatial neighbors pass 2 links per item.
const DefaultNearest = 2
