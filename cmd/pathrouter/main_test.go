package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pathrouter/core/logger"
	"github.com/dmitrymomot/pathrouter/core/router"
)

const testManifest = `
routes:
  - path: /users/<id:int>
    methods: [GET]
    handler: describe
  - path: /users/me
    methods: [GET]
    handler: describe
  - path: /orders
    methods: [POST]
    handler: no_content
    data_handler: require_json
    ssl_only: true
`

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "routes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewRouter(t *testing.T) {
	t.Parallel()

	cfg := AppConfig{RoutesFile: writeManifest(t, testManifest), TrustProxy: true}
	r, err := newRouter(cfg, logger.Nop(), prometheus.NewRegistry())
	require.NoError(t, err)

	assert.Contains(t, r.Routes(), router.RouteInfo{Method: http.MethodPost, Pattern: "/orders", SSLOnly: true})

	t.Run("describe variable route", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/42", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var body description
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "/users/<id:int>", body.Pattern)
		assert.Equal(t, map[string]string{"id": "42"}, body.Params)
		assert.Equal(t, w.Header().Get("X-Request-ID"), body.RequestID)
	})

	t.Run("literal wins", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/me", nil))

		var body description
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "/users/me", body.Pattern)
		assert.Empty(t, body.Params)
	})

	t.Run("ssl only behind proxy", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/orders", nil)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)

		req.Header.Set("X-Forwarded-Proto", "https")
		w = httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNoContent, w.Code)

		req.Header.Set("Content-Type", "text/plain")
		w = httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	})

	t.Run("probes", func(t *testing.T) {
		for _, path := range []string{"/healthz", "/readyz"} {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, w.Code, path)
		}
	})

	t.Run("metrics", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, strings.Contains(w.Body.String(), "pathrouter_lookups_total"))
	})
}

func TestNewRouterRejectsBadManifest(t *testing.T) {
	t.Parallel()

	_, err := newRouter(AppConfig{RoutesFile: writeManifest(t, "routes:\n  - path: /x\n    methods: [GET]\n    handler: missing\n")},
		logger.Nop(), prometheus.NewRegistry())
	assert.Error(t, err)

	_, err = newRouter(AppConfig{RoutesFile: filepath.Join(t.TempDir(), "nope.yaml")}, logger.Nop(), prometheus.NewRegistry())
	assert.Error(t, err)

	// Unsupported methods pass the manifest and fail at registration.
	_, err = newRouter(AppConfig{RoutesFile: writeManifest(t, "routes:\n  - path: /x\n    methods: [FETCH]\n    handler: health\n")},
		logger.Nop(), prometheus.NewRegistry())
	assert.ErrorIs(t, err, router.ErrInvalidMethod)
}
