package handler

import (
	"context"
	"net/http"
)

// Context is the per-request value handed to handlers, data handlers and middleware.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter

	// Param returns a captured path variable, or "" when absent.
	Param(key string) string
	// Params returns all captured path variables. It may be nil.
	Params() map[string]string
	// Pattern returns the registered route path the request matched.
	Pattern() string

	SetValue(key, val any)
}
