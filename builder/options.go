// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
)

// Option customizes a constructor.
type Option func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a deterministic RNG from seed (0 maps to a fixed default).
func WithSeed(seed int64) Option {
	return func(c *builderConfig) { c.rng = rngFromSeed(seed) }
}

// WithDensity sets the probability that an operation flips a given bit.
// Out-of-range values surface as ErrInvalidProbability from the constructor.
func WithDensity(p float64) Option {
	return func(c *builderConfig) { c.density = p }
}

// WithFeasible makes the target reachable by construction.
func WithFeasible() Option {
	return func(c *builderConfig) { c.feasible = true }
}

// WithDependentOps appends k operations that are XOR combinations of earlier
// operations. Panics if k < 0.
func WithDependentOps(k int) Option {
	if k < 0 {
		panic(fmt.Sprintf("builder: WithDependentOps(%d)", k))
	}
	return func(c *builderConfig) { c.dependentOp = k }
}
