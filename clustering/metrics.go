// SPDX-License-Identifier: MIT

package clustering

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/tangles/tree"
)

const metricsNamespace = "tangles"

// Metrics records pipeline runs. A nil *Metrics records nothing.
type Metrics struct {
	runs        prometheus.Counter
	halts       *prometheus.CounterVec
	grown       prometheus.Gauge
	pruned      prometheus.Gauge
	softSeconds prometheus.Histogram
}

// NewMetrics creates the pipeline collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "runs_total",
			Help:      "Total pipeline runs.",
		}),
		halts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "growth_halts_total",
			Help:      "Tree growth endings by reason.",
		}, []string{"reason"}),
		grown: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "maximal_tangles",
			Help:      "Maximal tangles of the last grown tree, before pruning.",
		}),
		pruned: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "clusters",
			Help:      "Clusters of the last run, after pruning.",
		}),
		softSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "soft_prediction_seconds",
			Help:      "Time spent propagating soft predictions.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}),
	}

	for _, c := range []prometheus.Collector{m.runs, m.halts, m.grown, m.pruned, m.softSeconds} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) observeGrowth(t *tree.Tree) {
	if m == nil {
		return
	}
	m.runs.Inc()
	m.halts.WithLabelValues(t.Halt.String()).Inc()
	m.grown.Set(float64(len(t.Maximals)))
}

func (m *Metrics) observeClusters(n int) {
	if m == nil {
		return
	}
	m.pruned.Set(float64(n))
}

func (m *Metrics) observeSoft(d time.Duration) {
	if m == nil {
		return
	}
	m.softSeconds.Observe(d.Seconds())
}
