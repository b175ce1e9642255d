package router

import (
	"iter"
	"net/http"
	"slices"
)

// Route describes one endpoint. Handler and DataHandler are opaque to the router:
// they are stored on registration and handed back by Lookup, never called.
type Route[H, D any] struct {
	Path        string
	Methods     []string
	Handler     H
	DataHandler D // zero value means no data handler
	SSLOnly     bool
}

// RouteOption adjusts a Route built by the Routes helpers.
type RouteOption[H, D any] func(*Route[H, D])

// WithDataHandler attaches a data handler to the route.
func WithDataHandler[H, D any](d D) RouteOption[H, D] {
	return func(r *Route[H, D]) {
		r.DataHandler = d
	}
}

// SSLOnly restricts the route to requests served over https.
func SSLOnly[H, D any]() RouteOption[H, D] {
	return func(r *Route[H, D]) {
		r.SSLOnly = true
	}
}

// Routes is an ordered table of route definitions assembled before a Router is built.
// Sub-applications each build their own table; tables are merged and then registered once.
// Routes is not safe for concurrent mutation.
type Routes[H, D any] struct {
	items []Route[H, D]
}

// NewRoutes creates a table holding the given routes in order.
func NewRoutes[H, D any](routes ...Route[H, D]) *Routes[H, D] {
	t := &Routes[H, D]{}
	t.Add(routes...)
	return t
}

// Add appends routes to the table.
func (t *Routes[H, D]) Add(routes ...Route[H, D]) {
	t.items = append(t.items, routes...)
}

// Route appends a route for the given methods.
func (t *Routes[H, D]) Route(path string, methods []string, h H, opts ...RouteOption[H, D]) {
	r := Route[H, D]{
		Path:    path,
		Methods: slices.Clone(methods),
		Handler: h,
	}
	for _, opt := range opts {
		opt(&r)
	}
	t.items = append(t.items, r)
}

// Get appends a GET route.
func (t *Routes[H, D]) Get(path string, h H, opts ...RouteOption[H, D]) {
	t.Route(path, []string{http.MethodGet}, h, opts...)
}

// Post appends a POST route.
func (t *Routes[H, D]) Post(path string, h H, opts ...RouteOption[H, D]) {
	t.Route(path, []string{http.MethodPost}, h, opts...)
}

// Put appends a PUT route.
func (t *Routes[H, D]) Put(path string, h H, opts ...RouteOption[H, D]) {
	t.Route(path, []string{http.MethodPut}, h, opts...)
}

// Patch appends a PATCH route.
func (t *Routes[H, D]) Patch(path string, h H, opts ...RouteOption[H, D]) {
	t.Route(path, []string{http.MethodPatch}, h, opts...)
}

// Delete appends a DELETE route.
func (t *Routes[H, D]) Delete(path string, h H, opts ...RouteOption[H, D]) {
	t.Route(path, []string{http.MethodDelete}, h, opts...)
}

// Head appends a HEAD route.
func (t *Routes[H, D]) Head(path string, h H, opts ...RouteOption[H, D]) {
	t.Route(path, []string{http.MethodHead}, h, opts...)
}

// Options appends an OPTIONS route.
func (t *Routes[H, D]) Options(path string, h H, opts ...RouteOption[H, D]) {
	t.Route(path, []string{http.MethodOptions}, h, opts...)
}

// Merge appends every route of other to t. A nil table is ignored.
func (t *Routes[H, D]) Merge(other *Routes[H, D]) {
	if other == nil {
		return
	}
	t.items = append(t.items, other.items...)
}

// Concat returns a new table with the routes of t followed by those of other.
// Neither input is modified.
func (t *Routes[H, D]) Concat(other *Routes[H, D]) *Routes[H, D] {
	out := &Routes[H, D]{items: slices.Clone(t.items)}
	out.Merge(other)
	return out
}

// Items returns a copy of the routes in insertion order.
func (t *Routes[H, D]) Items() []Route[H, D] {
	return slices.Clone(t.items)
}

// All iterates over the routes in insertion order.
func (t *Routes[H, D]) All() iter.Seq[Route[H, D]] {
	return slices.Values(t.items)
}

// Len returns the number of routes in the table.
func (t *Routes[H, D]) Len() int {
	return len(t.items)
}
