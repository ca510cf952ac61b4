// SPDX-License-Identifier: MIT

package toggle

import (
	"errors"

	"github.com/katalvlaran/xorsolve/minweight"
	"github.com/prometheus/client_golang/prometheus"
)

// Result labels for instancesTotal.
const (
	resultFeasible   = "feasible"
	resultInfeasible = "infeasible"
	resultInvalid    = "invalid"
	resultTooLarge   = "too_large"
)

// Metrics holds Prometheus collectors describing solver activity.
type Metrics struct {
	instances *prometheus.CounterVec
	freeVars  prometheus.Histogram
	searches  *prometheus.CounterVec
}

// NewMetrics creates the solver collectors and registers them on reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		instances: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "xorsolve_instances_total",
			Help: "Instances solved, by result",
		}, []string{"result"}),
		freeVars: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "xorsolve_free_variables",
			Help:    "Free variables (nullspace dimension) per feasible instance",
			Buckets: prometheus.LinearBuckets(0, 4, 12),
		}),
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "xorsolve_search_total",
			Help: "Coset searches, by strategy",
		}, []string{"strategy"}),
	}
	if reg != nil {
		reg.MustRegister(m.instances, m.freeVars, m.searches)
	}
	return m
}

func (m *Metrics) observe(res Result, err error) {
	if m == nil {
		return
	}
	switch {
	case errors.Is(err, minweight.ErrSearchSpaceTooLarge):
		m.instances.WithLabelValues(resultTooLarge).Inc()
	case err != nil:
		m.instances.WithLabelValues(resultInvalid).Inc()
	case !res.Feasible:
		m.instances.WithLabelValues(resultInfeasible).Inc()
	default:
		m.instances.WithLabelValues(resultFeasible).Inc()
		m.freeVars.Observe(float64(res.FreeVars))
		m.searches.WithLabelValues(res.Strategy.String()).Inc()
	}
}
