// Package metrics exposes Prometheus counters for journal mutations and
// record store failures.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Store failure operations.
const (
	OpLoad   = "load"
	OpDecode = "decode"
	OpSave   = "save"
)

// Metrics holds the application's collectors. A nil *Metrics is valid and
// records nothing, so components can be constructed without one in tests.
type Metrics struct {
	mutations     *prometheus.CounterVec
	storeFailures *prometheus.CounterVec
}

// New creates the collectors and registers them on reg.
// Pass prometheus.NewRegistry() in tests to avoid the global registry.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tripjournal",
			Name:      "mutations_total",
			Help:      "Journal mutations applied, by operation.",
		}, []string{"op"}),
		storeFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tripjournal",
			Name:      "store_failures_total",
			Help:      "Record store failures that were logged and swallowed, by operation.",
		}, []string{"op"}),
	}
	reg.MustRegister(m.mutations, m.storeFailures)
	return m
}

// Mutation counts one applied mutation.
func (m *Metrics) Mutation(op string) {
	if m == nil {
		return
	}
	m.mutations.WithLabelValues(op).Inc()
}

// StoreFailure counts one swallowed store failure.
func (m *Metrics) StoreFailure(op string) {
	if m == nil {
		return
	}
	m.storeFailures.WithLabelValues(op).Inc()
}

// Handler serves the metrics gathered by g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
