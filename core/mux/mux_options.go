package mux

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/pathrouter/core/handler"
	"github.com/dmitrymomot/pathrouter/core/router"
)

// Option configures a Router during creation.
type Option[C handler.Context] func(*mux[C])

// WithErrorHandler sets a custom error handler for the router.
func WithErrorHandler[C handler.Context](h handler.ErrorHandler[C]) Option[C] {
	return func(m *mux[C]) {
		if h != nil {
			m.errorHandler = h
		}
	}
}

// WithMiddleware adds middleware to the router.
func WithMiddleware[C handler.Context](middlewares ...handler.Middleware[C]) Option[C] {
	return func(m *mux[C]) {
		m.middlewares = append(m.middlewares, middlewares...)
	}
}

// WithContextFactory sets a custom context factory for the router.
// It is required when C is not *Context.
func WithContextFactory[C handler.Context](f func(http.ResponseWriter, *http.Request, MatchInfo) C) Option[C] {
	return func(m *mux[C]) {
		m.newContext = f
	}
}

// WithLogger sets a custom logger for the router and its routing trie.
func WithLogger[C handler.Context](logger *slog.Logger) Option[C] {
	return func(m *mux[C]) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithMetrics registers lookup and dispatch metrics with reg.
func WithMetrics[C handler.Context](reg prometheus.Registerer) Option[C] {
	return func(m *mux[C]) {
		if reg != nil {
			m.metrics = newMetrics(reg)
		}
	}
}

// WithTrustedProxyHeaders makes the router take the request scheme from
// X-Forwarded-Proto. Enable it only behind a proxy that sets the header.
func WithTrustedProxyHeaders[C handler.Context]() Option[C] {
	return func(m *mux[C]) {
		m.trustProxy = true
	}
}

// RouteOption configures a single route. It works both with the Router
// registration methods and with a Routes table.
type RouteOption[C handler.Context] = router.RouteOption[handler.HandlerFunc[C], handler.DataHandler[C]]

// WithDataHandler runs d before the route's handler.
func WithDataHandler[C handler.Context](d handler.DataHandler[C]) RouteOption[C] {
	return router.WithDataHandler[handler.HandlerFunc[C]](d)
}

// SSLOnly restricts the route to https requests.
func SSLOnly[C handler.Context]() RouteOption[C] {
	return router.SSLOnly[handler.HandlerFunc[C], handler.DataHandler[C]]()
}
