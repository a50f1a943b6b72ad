package decider

import (
	"github.com/forestrie/go-ngramcps/ngram"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "ngramcps"

const (
	ResultLoops     = "loops"
	ResultUndecided = "undecided"
)

// Metrics holds the prometheus instruments updated by a Batch.
type Metrics struct {
	// MachinesTotal counts classified machines by result (loops, undecided).
	MachinesTotal *prometheus.CounterVec

	// SaturationTotal counts saturation passes by how they stopped
	// (exhausted, halted, budget_exceeded).
	SaturationTotal *prometheus.CounterVec

	// ReachableContexts observes the reachable context count at the end of
	// each classification.
	ReachableContexts prometheus.Histogram
}

// NewMetrics creates the instruments and registers them with reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		MachinesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "machines_total",
			Help:      "Total classified machines by result",
		}, []string{"result"}),
		SaturationTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "saturation_total",
			Help:      "Total saturation passes by outcome",
		}, []string{"outcome"}),
		ReachableContexts: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "reachable_contexts",
			Help:      "Reachable local contexts per classified machine",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
		}),
	}
}

func resultLabel(r ngram.Result) string {
	if r == ngram.LoopsForever {
		return ResultLoops
	}
	return ResultUndecided
}

func outcomeLabel(o ngram.Outcome) string {
	switch o {
	case ngram.OutcomeExhausted:
		return "exhausted"
	case ngram.OutcomeHalted:
		return "halted"
	case ngram.OutcomeBudgetExceeded:
		return "budget_exceeded"
	}
	return "unknown"
}

func (m *Metrics) observe(c ngram.Classification) {
	if m == nil {
		return
	}
	m.MachinesTotal.WithLabelValues(resultLabel(c.Result)).Inc()
	m.SaturationTotal.WithLabelValues(outcomeLabel(c.Outcome)).Inc()
	m.ReachableContexts.Observe(float64(c.Contexts))
}
