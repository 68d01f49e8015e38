// Package metrics records search pipeline metrics in a Prometheus registry.
//
// A command-line run has no scrape endpoint, so the registry is written out in
// text exposition format with WriteFile, for pickup by node_exporter's
// textfile collector.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Query outcomes used as the "outcome" label
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Metrics holds the search pipeline collectors
type Metrics struct {
	registry *prometheus.Registry

	queriesTotal     *prometheus.CounterVec
	recordsExtracted prometheus.Counter
	recordsDuplicate prometheus.Counter
	recordsReturned  prometheus.Gauge
	searchDuration   prometheus.Histogram
}

// New creates the collectors and registers them on a private registry
func New() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.queriesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "eventfinder",
		Name:      "queries_total",
		Help:      "Search queries issued, by outcome",
	}, []string{"outcome"})
	m.recordsExtracted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "eventfinder",
		Name:      "records_extracted_total",
		Help:      "Event records extracted from search responses before deduplication",
	})
	m.recordsDuplicate = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "eventfinder",
		Name:      "records_duplicate_total",
		Help:      "Event records dropped as duplicates",
	})
	m.recordsReturned = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "eventfinder",
		Name:      "records_returned",
		Help:      "Event records returned by the last search",
	})
	m.searchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "eventfinder",
		Name:      "search_duration_seconds",
		Help:      "Wall time of a complete search",
		Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120},
	})

	m.registry.MustRegister(
		m.queriesTotal,
		m.recordsExtracted,
		m.recordsDuplicate,
		m.recordsReturned,
		m.searchDuration,
	)

	// Pre-create both outcomes so a clean run still exports failure=0
	m.queriesTotal.WithLabelValues(OutcomeSuccess)
	m.queriesTotal.WithLabelValues(OutcomeFailure)

	return m
}

// Registry exposes the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// QueryFinished counts one query with its outcome
func (m *Metrics) QueryFinished(success bool) {
	outcome := OutcomeSuccess
	if !success {
		outcome = OutcomeFailure
	}
	m.queriesTotal.WithLabelValues(outcome).Inc()
}

// RecordsExtracted adds n extracted records
func (m *Metrics) RecordsExtracted(n int) {
	m.recordsExtracted.Add(float64(n))
}

// SearchFinished records the deduplication result and duration of a search
func (m *Metrics) SearchFinished(extracted, returned int, elapsed time.Duration) {
	if dropped := extracted - returned; dropped > 0 {
		m.recordsDuplicate.Add(float64(dropped))
	}
	m.recordsReturned.Set(float64(returned))
	m.searchDuration.Observe(elapsed.Seconds())
}

// WriteFile writes the registry to path in Prometheus text format.
// The file is replaced atomically.
func (m *Metrics) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("writing metrics file: %w", err)
	}
	return nil
}
