// SPDX-License-Identifier: MIT
// Package: spectral/builder
//
// config.go - resolved builder configuration and option constructors.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors panic on programmer errors (nil RNG, nil ID scheme).
//   • newBuilderConfig applies defaults, then options, then re-fills blanks.

package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig is the immutable view a Constructor receives.
type builderConfig struct {
	// idFn maps a family-local index to a node label.
	idFn func(int) string

	// rng drives stochastic families; nil unless WithSeed/WithRand is given.
	rng *rand.Rand

	leftPrefix  string
	rightPrefix string
}

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// BuilderOption customizes a builderConfig before construction.
type BuilderOption func(*builderConfig)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        decimalID,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}

func decimalID(i int) string { return strconv.Itoa(i) }

// WithIDScheme sets the index → label generator. Panics on nil.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG for stochastic families. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a deterministic RNG from seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithPartitionPrefix sets bipartite side label prefixes. Empty values keep
// the defaults "L" and "R".
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(c *builderConfig) { c.leftPrefix, c.rightPrefix = left, right }
}
