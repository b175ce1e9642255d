package main

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/pathrouter/core/handler"
	"github.com/dmitrymomot/pathrouter/core/health"
	"github.com/dmitrymomot/pathrouter/core/manifest"
	"github.com/dmitrymomot/pathrouter/core/mux"
	"github.com/dmitrymomot/pathrouter/middleware"
)

type (
	handlerFunc = handler.HandlerFunc[*mux.Context]
	dataFunc    = handler.DataHandler[*mux.Context]
)

// builtinRoutes are served regardless of the manifest.
func builtinRoutes(log *slog.Logger, reg *prometheus.Registry, routeCount func() int) *mux.Routes[*mux.Context] {
	metrics := promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})

	routes := mux.NewRoutes[*mux.Context]()
	routes.Get("/healthz", health.Liveness[*mux.Context])
	routes.Head("/healthz", health.Liveness[*mux.Context])
	routes.Get("/readyz", health.Readiness[*mux.Context](log, health.Routes(routeCount)))
	routes.Get("/metrics", func(ctx *mux.Context) handler.Response {
		return func(w http.ResponseWriter, r *http.Request) error {
			metrics.ServeHTTP(w, r)
			return nil
		}
	})
	return routes
}

// handlerRegistry lists the names a routes manifest may refer to.
func handlerRegistry() *manifest.Registry[handlerFunc, dataFunc] {
	return manifest.NewRegistry[handlerFunc, dataFunc]().
		Handler("describe", describe).
		Handler("health", health.Liveness[*mux.Context]).
		Handler("no_content", health.NoContent[*mux.Context]).
		DataHandler("require_json", requireJSON)
}

type description struct {
	Method    string            `json:"method"`
	Path      string            `json:"path"`
	Pattern   string            `json:"pattern"`
	Params    map[string]string `json:"params,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// describe answers with what the router matched.
func describe(ctx *mux.Context) handler.Response {
	req := ctx.Request()
	id, _ := middleware.GetRequestID(ctx)
	body := description{
		Method:    req.Method,
		Path:      req.URL.Path,
		Pattern:   ctx.Pattern(),
		Params:    ctx.Params(),
		RequestID: id,
	}
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		return json.NewEncoder(w).Encode(body)
	}
}

var errUnsupportedMediaType = &statusError{status: http.StatusUnsupportedMediaType, msg: "content type must be application/json"}

type statusError struct {
	status int
	msg    string
}

func (e *statusError) Error() string   { return e.msg }
func (e *statusError) StatusCode() int { return e.status }

func requireJSON(ctx *mux.Context) error {
	if ctx.Request().Header.Get("Content-Type") != "application/json" {
		return errUnsupportedMediaType
	}
	return nil
}
