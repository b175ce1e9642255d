package mux

import (
	"context"
	"net/http"
	"time"
)

// Context is the default handler.Context implementation.
type Context struct {
	w       http.ResponseWriter
	r       *http.Request
	params  map[string]string
	pattern string
}

// NewContext creates a Context for a routed request.
func NewContext(w http.ResponseWriter, r *http.Request, route MatchInfo) *Context {
	return &Context{
		w:       w,
		r:       r,
		params:  route.Params,
		pattern: route.Pattern,
	}
}

// Deadline delegates to the request context.
func (c *Context) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

// Done delegates to the request context.
func (c *Context) Done() <-chan struct{} {
	return c.r.Context().Done()
}

// Err delegates to the request context.
func (c *Context) Err() error {
	return c.r.Context().Err()
}

// Value delegates to the request context.
func (c *Context) Value(key any) any {
	return c.r.Context().Value(key)
}

// Request returns the HTTP request. SetValue replaces it with a copy.
func (c *Context) Request() *http.Request {
	return c.r
}

// ResponseWriter returns the response writer.
func (c *Context) ResponseWriter() http.ResponseWriter {
	return c.w
}

// Param returns the captured path variable for key, or "".
func (c *Context) Param(key string) string {
	return c.params[key]
}

// Params returns all captured path variables. Nil when the route has none.
func (c *Context) Params() map[string]string {
	return c.params
}

// Pattern returns the route path the request matched, "" when nothing matched.
func (c *Context) Pattern() string {
	return c.pattern
}

// SetValue stores a request-scoped value readable through Value.
func (c *Context) SetValue(key, val any) {
	c.r = c.r.WithContext(context.WithValue(c.r.Context(), key, val))
}
