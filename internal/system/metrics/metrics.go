/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package metrics exposes the response cache counters as Prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/plc-corse/concentrator-inventory/internal/system/cache"
)

const namespace = "inventory"

// CacheMetrics records cache store events on a private registry.
type CacheMetrics struct {
	registry  *prometheus.Registry
	requests  *prometheus.CounterVec
	evictions *prometheus.CounterVec
	size      prometheus.Gauge
}

var _ cache.MetricsRecorder = (*CacheMetrics)(nil)

// NewCacheMetrics creates and registers the cache collectors.
func NewCacheMetrics() *CacheMetrics {
	registry := prometheus.NewRegistry()

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "cache",
		Name:      "requests_total",
		Help:      "Cache lookups by result",
	}, []string{"result"})

	evictions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "cache",
		Name:      "evictions_total",
		Help:      "Entries removed from the cache by reason",
	}, []string{"reason"})

	size := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "cache",
		Name:      "entries",
		Help:      "Entries currently held by the cache",
	})

	registry.MustRegister(requests, evictions, size)

	return &CacheMetrics{
		registry:  registry,
		requests:  requests,
		evictions: evictions,
		size:      size,
	}
}

// RecordHit counts a lookup that found a live entry.
func (m *CacheMetrics) RecordHit() {
	m.requests.WithLabelValues("hit").Inc()
}

// RecordMiss counts a lookup that found nothing or an expired entry.
func (m *CacheMetrics) RecordMiss() {
	m.requests.WithLabelValues("miss").Inc()
}

// RecordEviction counts removed entries.
func (m *CacheMetrics) RecordEviction(reason cache.EvictionReason, count int) {
	if count <= 0 {
		return
	}
	m.evictions.WithLabelValues(string(reason)).Add(float64(count))
}

// RecordSize sets the entry gauge.
func (m *CacheMetrics) RecordSize(size int) {
	m.size.Set(float64(size))
}

// Registry returns the registry holding the collectors.
func (m *CacheMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the collectors in the Prometheus exposition format.
func (m *CacheMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
