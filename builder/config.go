// SPDX-License-Identifier: MIT

package builder

import "math/rand"

const (
	defaultDensity = 0.3
	probMin        = 0.0
	probMax        = 1.0
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value; constructors never mutate it.
type builderConfig struct {
	rng         *rand.Rand
	density     float64
	feasible    bool
	dependentOp int
}

// newBuilderConfig applies opts in order over the defaults (last wins).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{density: defaultDensity}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
