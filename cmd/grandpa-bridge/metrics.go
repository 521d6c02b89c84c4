// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics counts what the rounds of one chain published.
type Metrics struct {
	registry *prometheus.Registry

	updates   *prometheus.CounterVec
	finalized *prometheus.GaugeVec
	priorWait prometheus.Histogram
}

// NewMetrics registers the chain metrics on a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		updates: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "grandpa_round_updates_total",
			Help: "Round states published on a bridge",
		}, []string{"round"}),
		finalized: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "grandpa_round_finalized_number",
			Help: "Number of the block finalized by a round, 0 while none",
		}, []string{"round"}),
		priorWait: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "grandpa_round_prior_wait_seconds",
			Help:    "Time a round waited for its predecessor to become completable",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 14), // 1ms to ~8s
		}),
	}
}

func (m *Metrics) observePublish(number uint64, state roundState) {
	label := strconv.FormatUint(number, 10)
	m.updates.WithLabelValues(label).Inc()
	if state.Finalized != nil {
		m.finalized.WithLabelValues(label).Set(float64(state.Finalized.Number))
	}
}

func (m *Metrics) observePriorWait(d time.Duration) {
	m.priorWait.Observe(d.Seconds())
}

// Handler exposes the metrics in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
