// SPDX-License-Identifier: MIT
// Package: versegraph/proximity
//
// types.go — Point, distance and sentinel errors.

package proximity

import (
	"errors"
	"math"
)

// ErrMissingCoordinate indicates that an item taking part in ranking has no
// entry in the coordinate table. Wrapped with the offending ID.
var ErrMissingCoordinate = errors.New("proximity: missing coordinate")

// ErrInvalidCoordinate indicates a NaN or infinite component, which would
// make the distance order meaningless.
var ErrInvalidCoordinate = errors.New("proximity: non-finite coordinate")

// ErrItemNotFound indicates a query for an ID the Ranker was not built with.
var ErrItemNotFound = errors.New("proximity: item not found")

// Point is one 3-D embedding coordinate.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Distance is the standard L2 norm of a-b.
func Distance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z

	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// finite reports whether all components are finite numbers.
func (p Point) finite() bool {
	for _, v := range [3]float64{p.X, p.Y, p.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// Neighbor is one ranked result.
type Neighbor struct {
	ID       int
	Distance float64
}
