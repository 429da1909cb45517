// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

package report

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"codeberg.org/transqa/transqa/core/cache"
	"codeberg.org/transqa/transqa/core/checks"
)

const metricsNamespace = "transqa"

// Metrics holds the collectors describing one validation pass.
type Metrics struct {
	registry *prometheus.Registry

	units    *prometheus.CounterVec
	failures *prometheus.CounterVec
	duration prometheus.Gauge
	lastPass prometheus.Gauge
	cacheOps *prometheus.GaugeVec
}

// NewMetrics creates the collectors on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		units: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "units_total",
			Help:      "Translation units checked, by verdict.",
		}, []string{"verdict"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "check_failures_total",
			Help:      "Units failed, by check.",
		}, []string{"check"}),
		duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "pass_duration_seconds",
			Help:      "Wall time of the last validation pass.",
		}),
		lastPass: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "last_pass_timestamp_seconds",
			Help:      "Unix time the last validation pass finished.",
		}),
		cacheOps: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "cache_operations",
			Help:      "Bounded verdict cache activity during the last pass.",
		}, []string{"operation"}),
	}

	m.registry.MustRegister(m.units, m.failures, m.duration, m.lastPass, m.cacheOps)

	return m
}

// Observe records pass. Every check in checkIDs gets a failure series, so a
// check that failed nothing is exported as zero.
func (m *Metrics) Observe(pass *checks.Pass, checkIDs []string) {
	failed := pass.FailedUnits()

	m.units.WithLabelValues("passed").Add(float64(len(pass.Results) - failed))
	m.units.WithLabelValues("failed").Add(float64(failed))

	for _, id := range checkIDs {
		m.failures.WithLabelValues(id)
	}

	for id, n := range pass.Failures() {
		m.failures.WithLabelValues(id).Add(float64(n))
	}

	m.duration.Set(pass.Finished.Sub(pass.Started).Seconds())
	m.lastPass.Set(float64(pass.Finished.Unix()))
}

// ObserveCache records the activity of a bounded cache.
func (m *Metrics) ObserveCache(stats cache.Stats) {
	m.cacheOps.WithLabelValues("hit").Set(float64(stats.Hits))
	m.cacheOps.WithLabelValues("miss").Set(float64(stats.Misses))
	m.cacheOps.WithLabelValues("eviction").Set(float64(stats.Evictions))
}

// WriteTextfile writes every collected series to path in the format read by
// the node_exporter textfile collector. The file is replaced atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}

	return nil
}
