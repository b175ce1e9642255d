package mux

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pathrouter/core/handler"
)

func TestMetricsRecordLookups(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := newMux(WithMetrics[*Context](reg))
	m.Get("/users/<id:int>", func(ctx *Context) handler.Response {
		return func(w http.ResponseWriter, r *http.Request) error {
			w.WriteHeader(http.StatusNoContent)
			return nil
		}
	})

	for _, target := range []string{"/users/1", "/users/2", "/users/x"} {
		m.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
	}
	m.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("PROPFIND", "/users/1", nil))

	require.NotNil(t, m.metrics)
	assert.InDelta(t, 2, testutil.ToFloat64(m.metrics.lookups.WithLabelValues(http.MethodGet, outcomeMatched)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.metrics.lookups.WithLabelValues(http.MethodGet, outcomeNotFound)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.metrics.lookups.WithLabelValues("OTHER", outcomeNotFound)), 0)

	// One histogram series, for GET; misses are not timed.
	assert.Equal(t, 1, testutil.CollectAndCount(m.metrics.duration))

	n, err := testutil.GatherAndCount(reg, "pathrouter_lookups_total")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestMetricsDisabled(t *testing.T) {
	t.Parallel()

	m := newMux[*Context]()
	assert.Nil(t, m.metrics)

	// nil metrics must be safe to call
	assert.NotPanics(t, func() {
		m.metrics.observeLookup(http.MethodGet, true)
	})
}

func TestMethodLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "GET", methodLabel(http.MethodGet))
	assert.Equal(t, "TRACE", methodLabel(http.MethodTrace))
	assert.Equal(t, "OTHER", methodLabel("get"))
	assert.Equal(t, "OTHER", methodLabel("BREW"))
}
