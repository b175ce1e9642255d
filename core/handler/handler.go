package handler

import "net/http"

// Response renders an HTTP response.
// Rendering errors are passed to the dispatcher's error handler.
type Response func(w http.ResponseWriter, r *http.Request) error

// HandlerFunc handles a routed request.
type HandlerFunc[C Context] func(ctx C) Response

// DataHandler prepares request input before the route's handler runs:
// decoding, validation, filtering. A non-nil error stops dispatch and is
// sent to the error handler instead.
type DataHandler[C Context] func(ctx C) error

// ErrorHandler handles errors during request processing.
type ErrorHandler[C Context] func(ctx C, err error)

// Middleware wraps handlers to add cross-cutting functionality.
type Middleware[C Context] func(next HandlerFunc[C]) HandlerFunc[C]
