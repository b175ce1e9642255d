package mux

import (
	"net/http"
	"slices"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dmitrymomot/pathrouter/core/router"
)

const (
	outcomeMatched  = "matched"
	outcomeNotFound = "not_found"
)

// metrics records route lookups. A nil *metrics records nothing.
type metrics struct {
	lookups  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)
	return &metrics{
		lookups: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pathrouter",
				Name:      "lookups_total",
				Help:      "Total number of route lookups by method and outcome",
			},
			[]string{"method", "outcome"},
		),
		duration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "pathrouter",
				Name:      "dispatch_duration_seconds",
				Help:      "Time spent dispatching matched requests",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method"},
		),
	}
}

func (m *metrics) observeLookup(method string, matched bool) {
	if m == nil {
		return
	}
	outcome := outcomeNotFound
	if matched {
		outcome = outcomeMatched
	}
	m.lookups.WithLabelValues(methodLabel(method), outcome).Inc()
}

func (m *metrics) observeDispatch(method string, start time.Time) {
	if m == nil {
		return
	}
	m.duration.WithLabelValues(methodLabel(method)).Observe(time.Since(start).Seconds())
}

// methodLabel bounds label cardinality to the methods the router knows.
func methodLabel(method string) string {
	if slices.Contains(router.Methods, method) {
		return method
	}
	if method == http.MethodConnect || method == http.MethodTrace {
		return method
	}
	return "OTHER"
}
