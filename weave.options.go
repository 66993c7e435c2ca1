package weave

import (
	"go.uber.org/zap"
)

// Option is a functional option for configuring the Weaver.
type Option func(*weaverConfig)

// weaverConfig holds the internal configuration for a Weaver.
type weaverConfig struct {
	maxDepth    int
	strictArity bool
	unsupported UnsupportedStrategy
	logger      *zap.Logger
}

// defaultWeaverConfig returns the default weaver configuration.
func defaultWeaverConfig() *weaverConfig {
	return &weaverConfig{
		maxDepth:    DefaultMaxDepth,
		strictArity: DefaultStrictArity,
		unsupported: UnsupportedStrategyOmit,
		logger:      nil,
	}
}

// WithMaxDepth sets the maximum nesting depth of sequences.
// Use 0 for unlimited depth.
// Default: 100
func WithMaxDepth(depth int) Option {
	return func(c *weaverConfig) {
		c.maxDepth = depth
	}
}

// WithStrictArity rejects present substitutions that have no slot.
// Default: false (extra substitutions are ignored)
func WithStrictArity(strict bool) Option {
	return func(c *weaverConfig) {
		c.strictArity = strict
	}
}

// WithUnsupportedStrategy sets how the renderer treats unsupported values.
// Default: UnsupportedStrategyOmit
func WithUnsupportedStrategy(strategy UnsupportedStrategy) Option {
	return func(c *weaverConfig) {
		c.unsupported = strategy
	}
}

// WithLogger sets the logger for the weaver.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *weaverConfig) {
		c.logger = logger
	}
}
