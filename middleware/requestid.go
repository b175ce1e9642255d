package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/pathrouter/core/handler"
)

type requestIDContextKey struct{}

// RequestIDConfig configures the request ID middleware.
type RequestIDConfig struct {
	// Skip bypasses the middleware for matching requests.
	Skip func(ctx handler.Context) bool
	// Generator creates new IDs. Defaults to a random UUID.
	Generator func() string
	// HeaderName is read when UseExisting is set and always written to the response.
	// Defaults to "X-Request-ID".
	HeaderName string
	// UseExisting keeps a valid ID sent by the client or an upstream proxy.
	UseExisting bool
}

// RequestID tags every routed request with a fresh UUID, stored in the
// context and echoed in the X-Request-ID response header.
func RequestID[C handler.Context]() handler.Middleware[C] {
	return RequestIDWithConfig[C](RequestIDConfig{})
}

// RequestIDWithConfig is RequestID with custom configuration.
func RequestIDWithConfig[C handler.Context](cfg RequestIDConfig) handler.Middleware[C] {
	if cfg.HeaderName == "" {
		cfg.HeaderName = "X-Request-ID"
	}
	if cfg.Generator == nil {
		cfg.Generator = func() string { return uuid.NewString() }
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			var id string
			if cfg.UseExisting {
				id = incomingID(ctx.Request().Header.Get(cfg.HeaderName))
			}
			if id == "" {
				id = cfg.Generator()
			}

			ctx.SetValue(requestIDContextKey{}, id)

			response := next(ctx)
			if response == nil {
				return nil
			}
			return func(w http.ResponseWriter, r *http.Request) error {
				w.Header().Set(cfg.HeaderName, id)
				return response(w, r)
			}
		}
	}
}

// incomingID accepts client supplied IDs only when they parse as a UUID,
// which keeps arbitrary header content out of logs.
func incomingID(raw string) string {
	if raw == "" {
		return ""
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return ""
	}
	return id.String()
}

// GetRequestID returns the request ID stored by RequestID.
func GetRequestID(ctx handler.Context) (string, bool) {
	id, ok := ctx.Value(requestIDContextKey{}).(string)
	return id, ok
}
