// SPDX-License-Identifier: MIT
// Package: versegraph/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with %w at the failing site ("<Method>: ...: %w").
//   • Build never panics; option constructors panic on programmer errors.

package builder

import (
	"errors"

	"github.com/katalvlaran/versegraph/proximity"
)

// ErrInvalidConstraints indicates kMin > kMax or a negative bound.
// The inputs are rejected as given; nothing is clamped.
var ErrInvalidConstraints = errors.New("builder: invalid degree constraints")

// ErrMissingCoordinate indicates an item with no coordinate entry.
// It is the proximity sentinel, re-exported so callers need one import.
var ErrMissingCoordinate = proximity.ErrMissingCoordinate

// ErrBuildFailed indicates an internal graph operation failed mid-build.
// Seeing it means a bug in the passes, not bad input.
var ErrBuildFailed = errors.New("builder: build failed")
