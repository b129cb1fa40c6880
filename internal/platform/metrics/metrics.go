// Copyright (c) 2026 WebNDB. All rights reserved.

// Package metrics exposes Prometheus instrumentation for the HTTP layer.
//
// Metric vectors are registered once at init via promauto; the Handler
// function returns the scrape endpoint for /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// requestsTotal counts completed HTTP requests.
	// Labels: method, route (chi pattern, not raw path), status
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "webndb",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests served",
	}, []string{"method", "route", "status"})

	// requestDuration measures end-to-end request latency.
	// Labels: method, route
	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "webndb",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
	}, []string{"method", "route"})

	// searchSessionsActive tracks live filter-state sessions.
	searchSessionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "webndb",
		Subsystem: "search",
		Name:      "sessions_active",
		Help:      "Number of live search filter sessions",
	})
)

// ObserveRequest records one completed request.
func ObserveRequest(method, route string, status int, elapsed time.Duration) {
	requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// SetActiveSessions updates the live session gauge.
func SetActiveSessions(n int) {
	searchSessionsActive.Set(float64(n))
}

// Handler returns the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware instruments every request with count and latency metrics.
//
// Route patterns are resolved after the handler runs so that chi has
// populated the route context (e.g. "/api/v1/novels/{id}" instead of the
// raw, high-cardinality URL path).
func Middleware(routePattern func(r *http.Request) string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: writer, status: http.StatusOK}

			next.ServeHTTP(recorder, request)

			route := request.URL.Path
			if routePattern != nil {
				if p := routePattern(request); p != "" {
					route = p
				}
			}
			ObserveRequest(request.Method, route, recorder.status, time.Since(start))
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (recorder *statusRecorder) WriteHeader(code int) {
	recorder.status = code
	recorder.ResponseWriter.WriteHeader(code)
}
