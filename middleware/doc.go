// Package middleware provides handler.Middleware implementations for the
// pathrouter dispatcher.
//
// Middleware runs only for requests that matched a route, after the routing
// decision, so it can read the matched pattern and path variables from the
// context. Misses go straight to the router's error handler.
//
// # Request ID
//
// RequestID stores a UUID per request and sets the X-Request-ID response header:
//
//	r := mux.New[*mux.Context]()
//	r.Use(middleware.RequestID[*mux.Context]())
//
//	id, ok := middleware.GetRequestID(ctx)
//
// With RequestIDConfig.UseExisting an incoming header is reused when it holds a
// valid UUID.
//
// # Logging
//
// Logging writes one access record per request:
//
//	r.Use(
//		middleware.RequestID[*mux.Context](),
//		middleware.LoggingWithLogger[*mux.Context](log),
//	)
//
// Register RequestID first so the record carries the request ID.
package middleware
