// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for the HTTP surface and the
// tracker's domain events.
type Metrics struct {
	registry *prometheus.Registry

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec

	VisitsRecorded prometheus.Counter
	UsersCreated   prometheus.Counter
	UserSwitches   prometheus.Counter
	CountryMisses  prometheus.Counter
}

// NewMetrics registers all collectors on a fresh registry, plus the Go
// runtime and process collectors.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tracker",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "tracker",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		VisitsRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tracker",
			Name:      "visits_recorded_total",
			Help:      "Visited-country records inserted.",
		}),
		UsersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tracker",
			Name:      "users_created_total",
			Help:      "Users created.",
		}),
		UserSwitches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tracker",
			Name:      "user_switches_total",
			Help:      "Current-user switches.",
		}),
		CountryMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tracker",
			Name:      "country_lookup_misses_total",
			Help:      "Country lookups that matched nothing.",
		}),
	}

	reg.MustRegister(m.requests, m.duration, m.VisitsRecorded, m.UsersCreated, m.UserSwitches, m.CountryMisses)
	return m
}

// Instrument counts and times requests for a route pattern
func (m *Metrics) Instrument(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := record(w)

		next(rec, r)

		m.duration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		m.requests.WithLabelValues(route, r.Method, strconv.Itoa(rec.status)).Inc()
	}
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry, mainly for tests
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
