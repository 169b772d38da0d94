// SPDX-License-Identifier: MIT
package embedding

import (
	"go.uber.org/zap"
)

// DefaultWorkers bounds concurrent calls to the embedding service.
const DefaultWorkers = 4

// Option customises Generate.
type Option func(*generateConfig)

type generateConfig struct {
	workers int
	logger  *zap.Logger
}

func newGenerateConfig(opts ...Option) generateConfig {
	cfg := generateConfig{workers: DefaultWorkers, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithWorkers sets the number of poems embedded concurrently.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("embedding: WithWorkers requires n >= 1")
	}
	return func(c *generateConfig) { c.workers = n }
}

// WithLogger routes progress and skip messages to l.
// Panics if l is nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("embedding: WithLogger requires a non-nil logger")
	}
	return func(c *generateConfig) { c.logger = l }
}
