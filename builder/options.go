// SPDX-License-Identifier: MIT
// Package: versegraph/builder
//
// options.go — functional options for Build.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Constructors of structural knobs (workers, nearest, logger) PANIC on
//     meaningless inputs; they are programmer errors.
//   • Degree bounds are data (config files, flags), so they are validated by
//     Build and surface as ErrInvalidConstraints instead.
//   • No hidden globals; everything flows through builderConfig.

package builder

import "go.uber.org/zap"

// BuilderOption customizes a build by mutating a builderConfig before the
// passes run. Complexity: applying N options costs O(N).
type BuilderOption func(*builderConfig)

// WithKMin sets the degree floor targeted by backfill.
func WithKMin(k int) BuilderOption {
	return func(c *builderConfig) { c.kMin = k }
}

// WithKMax sets the degree ceiling.
func WithKMax(k int) BuilderOption {
	return func(c *builderConfig) { c.kMax = k }
}

// WithConstraints sets both bounds at once.
func WithConstraints(kMin, kMax int) BuilderOption {
	return func(c *builderConfig) { c.kMin, c.kMax = kMin, kMax }
}

// WithNearest sets how many spatial neighbors pass 2 links.
// Panics on k < 0.
func WithNearest(k int) BuilderOption {
	if k < 0 {
		panic("builder: WithNearest(k<0)")
	}
	return func(c *builderConfig) { c.nearest = k }
}

// WithWorkers bounds the goroutines used by passes 1 and 2.
// Output does not depend on n. Panics on n < 1.
func WithWorkers(n int) BuilderOption {
	if n < 1 {
		panic("builder: WithWorkers(n<1)")
	}
	return func(c *builderConfig) { c.workers = n }
}

// WithLogger routes pass diagnostics to l. Panics on nil; omit the option
// for a silent build.
func WithLogger(l *zap.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) { c.logger = l }
}
