package mux

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/dmitrymomot/pathrouter/core/handler"
	"github.com/dmitrymomot/pathrouter/core/logger"
	"github.com/dmitrymomot/pathrouter/core/router"
)

// Router dispatches HTTP requests to routes matched by the routing trie.
// Register everything before serving; registration is not safe for concurrent use.
type Router[C handler.Context] interface {
	http.Handler

	// HTTP method handlers
	Get(pattern string, h handler.HandlerFunc[C], opts ...RouteOption[C])
	Post(pattern string, h handler.HandlerFunc[C], opts ...RouteOption[C])
	Put(pattern string, h handler.HandlerFunc[C], opts ...RouteOption[C])
	Patch(pattern string, h handler.HandlerFunc[C], opts ...RouteOption[C])
	Delete(pattern string, h handler.HandlerFunc[C], opts ...RouteOption[C])
	Head(pattern string, h handler.HandlerFunc[C], opts ...RouteOption[C])
	Options(pattern string, h handler.HandlerFunc[C], opts ...RouteOption[C])

	// Method registers h for one or more methods.
	Method(pattern string, h handler.HandlerFunc[C], methods ...string)

	// Include registers every route of a table, typically one per sub-application.
	Include(routes *Routes[C])

	// Use appends middleware. It must be called before any route is registered.
	Use(middlewares ...handler.Middleware[C])

	// Routes lists the registered routes.
	Routes() []router.RouteInfo
}

// Routes is a route table whose handlers run on a Router[C].
type Routes[C handler.Context] = router.Routes[handler.HandlerFunc[C], handler.DataHandler[C]]

// NewRoutes creates an empty route table for a Router[C].
func NewRoutes[C handler.Context]() *Routes[C] {
	return router.NewRoutes[handler.HandlerFunc[C], handler.DataHandler[C]]()
}

// MatchInfo is what the dispatcher knows about a request after routing.
type MatchInfo struct {
	Params  map[string]string
	Pattern string
	Scheme  string
}

type mux[C handler.Context] struct {
	tree         *router.Router[handler.HandlerFunc[C], handler.DataHandler[C]]
	middlewares  []handler.Middleware[C]
	errorHandler handler.ErrorHandler[C]
	newContext   func(http.ResponseWriter, *http.Request, MatchInfo) C
	logger       *slog.Logger
	metrics      *metrics
	trustProxy   bool
	registered   bool
}

// New creates a new router with the given options.
func New[C handler.Context](opts ...Option[C]) Router[C] {
	return newMux(opts...)
}

func newMux[C handler.Context](opts ...Option[C]) *mux[C] {
	m := &mux[C]{
		errorHandler: defaultErrorHandler[C],
		logger:       logger.Nop(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.tree = router.New[handler.HandlerFunc[C], handler.DataHandler[C]](router.WithLogger(m.logger))

	// Only *Context works without a factory
	if m.newContext == nil {
		var zero C
		if _, ok := any(zero).(*Context); !ok {
			panic(ErrNoContextFactory)
		}
		m.newContext = func(w http.ResponseWriter, r *http.Request, info MatchInfo) C {
			return any(NewContext(w, r, info)).(C)
		}
	}

	return m
}

// ServeHTTP implements http.Handler.
func (m *mux[C]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ww := track(w)

	scheme := m.scheme(r)
	match, ok := m.tree.Lookup(r.URL.Path, r.Method, scheme)
	m.metrics.observeLookup(r.Method, ok)

	ctx := m.newContext(ww, r, MatchInfo{
		Params:  match.Params,
		Pattern: match.Pattern,
		Scheme:  scheme,
	})

	// Recover from panics to prevent server crashes
	defer func() {
		if p := recover(); p != nil {
			panicErr := &panicError{
				value: p,
				stack: debug.Stack(),
			}

			if ww.started() {
				// Can't send error response, just log the panic
				m.logger.Error("panic after response written",
					slog.Any("value", panicErr.value),
					slog.String("stack", string(panicErr.stack)),
					logger.Path(r.URL.Path),
					logger.Method(r.Method),
					logger.StatusCode(ww.status),
					slog.Int64("bytes_written", ww.bytes),
				)
			} else {
				m.errorHandler(ctx, panicErr)
			}
		}
	}()

	if !ok {
		m.logger.Debug("no route matched",
			logger.Method(r.Method),
			logger.Path(r.URL.Path),
			logger.Scheme(scheme),
		)
		m.errorHandler(ctx, ErrNotFound)
		return
	}
	defer m.metrics.observeDispatch(r.Method, start)

	fn := endpoint(match.Handler, match.DataHandler)
	if len(m.middlewares) > 0 {
		fn = chain(m.middlewares, fn)
	}

	response := fn(ctx)
	if response == nil {
		m.errorHandler(ctx, ErrNilResponse)
		return
	}

	if err := response(ww, ctx.Request()); err != nil {
		m.errorHandler(ctx, err)
	}
}

// scheme reports https for TLS connections, or the forwarded scheme when trusted.
func (m *mux[C]) scheme(r *http.Request) string {
	if m.trustProxy {
		if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
			// Proxies may append: "https, http"
			first, _, _ := strings.Cut(proto, ",")
			return strings.ToLower(strings.TrimSpace(first))
		}
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

// endpoint runs the data handler, if any, before the route handler.
// A data handler error is rendered through the error handler.
func endpoint[C handler.Context](h handler.HandlerFunc[C], data handler.DataHandler[C]) handler.HandlerFunc[C] {
	if data == nil {
		return h
	}
	return func(ctx C) handler.Response {
		if err := data(ctx); err != nil {
			return func(http.ResponseWriter, *http.Request) error {
				return err
			}
		}
		return h(ctx)
	}
}

// Get registers a handler for GET requests.
func (m *mux[C]) Get(pattern string, h handler.HandlerFunc[C], opts ...RouteOption[C]) {
	m.handle(pattern, h, []string{http.MethodGet}, opts)
}

// Post registers a handler for POST requests.
func (m *mux[C]) Post(pattern string, h handler.HandlerFunc[C], opts ...RouteOption[C]) {
	m.handle(pattern, h, []string{http.MethodPost}, opts)
}

// Put registers a handler for PUT requests.
func (m *mux[C]) Put(pattern string, h handler.HandlerFunc[C], opts ...RouteOption[C]) {
	m.handle(pattern, h, []string{http.MethodPut}, opts)
}

// Patch registers a handler for PATCH requests.
func (m *mux[C]) Patch(pattern string, h handler.HandlerFunc[C], opts ...RouteOption[C]) {
	m.handle(pattern, h, []string{http.MethodPatch}, opts)
}

// Delete registers a handler for DELETE requests.
func (m *mux[C]) Delete(pattern string, h handler.HandlerFunc[C], opts ...RouteOption[C]) {
	m.handle(pattern, h, []string{http.MethodDelete}, opts)
}

// Head registers a handler for HEAD requests.
func (m *mux[C]) Head(pattern string, h handler.HandlerFunc[C], opts ...RouteOption[C]) {
	m.handle(pattern, h, []string{http.MethodHead}, opts)
}

// Options registers a handler for OPTIONS requests.
func (m *mux[C]) Options(pattern string, h handler.HandlerFunc[C], opts ...RouteOption[C]) {
	m.handle(pattern, h, []string{http.MethodOptions}, opts)
}

// Method registers a handler for one or more specific HTTP methods.
func (m *mux[C]) Method(pattern string, h handler.HandlerFunc[C], methods ...string) {
	m.handle(pattern, h, methods, nil)
}

// Include registers every route of the table in order.
func (m *mux[C]) Include(routes *Routes[C]) {
	if routes == nil {
		return
	}
	for route := range routes.All() {
		m.register(route)
	}
}

// Use appends middleware to the router.
func (m *mux[C]) Use(middlewares ...handler.Middleware[C]) {
	if m.registered {
		panic(ErrLateMiddleware)
	}
	m.middlewares = append(m.middlewares, middlewares...)
}

// Routes returns all registered routes.
func (m *mux[C]) Routes() []router.RouteInfo {
	return m.tree.Routes()
}

func (m *mux[C]) handle(pattern string, h handler.HandlerFunc[C], methods []string, opts []RouteOption[C]) {
	route := router.Route[handler.HandlerFunc[C], handler.DataHandler[C]]{
		Path:    pattern,
		Methods: methods,
		Handler: h,
	}
	for _, opt := range opts {
		opt(&route)
	}
	m.register(route)
}

// register panics on invalid routes: a router that cannot be built must stop startup.
func (m *mux[C]) register(route router.Route[handler.HandlerFunc[C], handler.DataHandler[C]]) {
	if route.Handler == nil {
		panic(fmt.Errorf("%w on '%s'", ErrNilHandler, route.Path))
	}
	m.tree.MustRegister(route)
	m.registered = true
}
