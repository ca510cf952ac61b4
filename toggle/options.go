// SPDX-License-Identifier: MIT

package toggle

import (
	"fmt"

	"github.com/katalvlaran/xorsolve/minweight"
	"github.com/sirupsen/logrus"
)

// DefaultWorkers processes instances sequentially.
const DefaultWorkers = 1

type solverConfig struct {
	workers int
	search  []minweight.Option
	metrics *Metrics
	log     *logrus.Entry
}

// Option configures a Solver.
type Option func(*solverConfig)

// WithWorkers bounds the number of instances solved concurrently by SolveAll
// and Total. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("toggle: WithWorkers(%d) must be >= 1", n))
	}
	return func(c *solverConfig) { c.workers = n }
}

// WithSearchOptions forwards options to minweight.Search.
func WithSearchOptions(opts ...minweight.Option) Option {
	return func(c *solverConfig) { c.search = append(c.search, opts...) }
}

// WithMetrics records solver activity into m. Panics on nil.
func WithMetrics(m *Metrics) Option {
	if m == nil {
		panic("toggle: WithMetrics(nil)")
	}
	return func(c *solverConfig) { c.metrics = m }
}

// WithLogger replaces the package logger. Panics on nil.
func WithLogger(l *logrus.Entry) Option {
	if l == nil {
		panic("toggle: WithLogger(nil)")
	}
	return func(c *solverConfig) { c.log = l }
}

func newSolverConfig(opts []Option) solverConfig {
	c := solverConfig{workers: DefaultWorkers, log: log}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
