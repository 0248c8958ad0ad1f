// Package metrics exposes Prometheus collectors for pipeline outcomes.
package metrics

import (
	"github.com/fourthplaces/rootsignal/pkg/models"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the pipeline's collectors. Construct once per process with
// New and share across runs; Nop returns an unregistered instance for
// tests.
type Metrics struct {
	runsTotal        *prometheus.CounterVec
	pagesFetched     prometheus.Counter
	fetchesFailed    prometheus.Counter
	signalsExtracted prometheus.Counter
	signalsStored    *prometheus.CounterVec
	signalsDeduped   prometheus.Counter
	signalsDropped   prometheus.Counter
	budgetSpent      prometheus.Counter
}

// New creates and registers the collectors with the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	m := newMetrics()
	reg.MustRegister(
		m.runsTotal,
		m.pagesFetched,
		m.fetchesFailed,
		m.signalsExtracted,
		m.signalsStored,
		m.signalsDeduped,
		m.signalsDropped,
		m.budgetSpent,
	)
	return m
}

// Nop returns collectors that are never registered; observations go
// nowhere visible.
func Nop() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		runsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rootsignal_runs_total",
			Help: "Pipeline runs by terminal status.",
		}, []string{"status"}),
		pagesFetched: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rootsignal_pages_fetched_total",
			Help: "Pages, feeds, and post batches fetched.",
		}),
		fetchesFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rootsignal_fetches_failed_total",
			Help: "Fetch units that failed after retries.",
		}),
		signalsExtracted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rootsignal_signals_extracted_total",
			Help: "Signal nodes returned by the extractor.",
		}),
		signalsStored: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rootsignal_signals_stored_total",
			Help: "New signals accepted into the graph, by type.",
		}, []string{"node_type"}),
		signalsDeduped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rootsignal_signals_deduplicated_total",
			Help: "Extracted nodes resolved to existing signals.",
		}),
		signalsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rootsignal_signals_dropped_total",
			Help: "Extracted nodes rejected by the dedup layers.",
		}),
		budgetSpent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rootsignal_budget_spent_cents_total",
			Help: "Budget cents spent across runs.",
		}),
	}
}

// ObserveRun records one finished run's stats.
func (m *Metrics) ObserveRun(stats models.RunStats) {
	m.pagesFetched.Add(float64(stats.PagesFetched))
	m.fetchesFailed.Add(float64(stats.FetchesFailed))
	m.signalsExtracted.Add(float64(stats.SignalsExtracted))
	for nodeType, n := range stats.ByType {
		m.signalsStored.WithLabelValues(string(nodeType)).Add(float64(n))
	}
	m.signalsDeduped.Add(float64(stats.SignalsDeduplicated))
	m.signalsDropped.Add(float64(stats.SignalsDropped))
	m.budgetSpent.Add(float64(stats.BudgetSpentCents))
}

// ObserveStatus counts a run's terminal status.
func (m *Metrics) ObserveStatus(status string) {
	m.runsTotal.WithLabelValues(status).Inc()
}
