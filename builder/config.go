// SPDX-License-Identifier: MIT
// Package: versegraph/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Defaults:
//   • kMin    = DefaultKMin (2)
//   • kMax    = DefaultKMax (15)
//   • nearest = DefaultNearest (2)
//   • workers = runtime.GOMAXPROCS(0)
//   • logger  = zap.NewNop()

package builder

import (
	"runtime"

	"go.uber.org/zap"
)

// builderConfig aggregates all knobs used by the passes.
// It is passed by value to keep it immutable once resolved.
type builderConfig struct {
	kMin    int
	kMax    int
	nearest int
	workers int
	logger  *zap.Logger
}

// newBuilderConfig applies opts over the defaults, last wins.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		kMin:    DefaultKMin,
		kMax:    DefaultKMax,
		nearest: DefaultNearest,
		workers: runtime.GOMAXPROCS(0),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
