package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/pathrouter/core/handler"
	"github.com/dmitrymomot/pathrouter/core/logger"
)

// LoggingConfig configures the access log middleware.
type LoggingConfig struct {
	// Skip bypasses the middleware for matching requests, e.g. health probes.
	Skip func(ctx handler.Context) bool

	// Logger receives the records. Defaults to slog.Default().
	Logger *slog.Logger

	// Level for successful requests. Defaults to slog.LevelInfo.
	Level slog.Level

	// SlowRequestThreshold promotes slower requests to warning level. Defaults to 5s.
	SlowRequestThreshold time.Duration

	// Component is attached to every record. Defaults to "http".
	Component string
}

// Logging writes one record per routed request at info level using slog.Default().
func Logging[C handler.Context]() handler.Middleware[C] {
	return LoggingWithConfig[C](LoggingConfig{})
}

// LoggingWithLogger is Logging with a custom logger.
func LoggingWithLogger[C handler.Context](log *slog.Logger) handler.Middleware[C] {
	return LoggingWithConfig[C](LoggingConfig{Logger: log})
}

// LoggingWithConfig creates the access log middleware.
//
// The record carries the method, the request path, the matched route pattern,
// the number of captured path variables, the status, the latency and the
// request ID when RequestID runs earlier in the chain. Server errors are
// logged at error level and client errors at warning level.
func LoggingWithConfig[C handler.Context](cfg LoggingConfig) handler.Middleware[C] {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.SlowRequestThreshold <= 0 {
		cfg.SlowRequestThreshold = 5 * time.Second
	}
	if cfg.Component == "" {
		cfg.Component = "http"
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			start := time.Now()
			response := next(ctx)
			if response == nil {
				return nil
			}

			// Read after next: handlers may replace the request.
			req := ctx.Request()
			requestID, _ := GetRequestID(ctx)

			return func(w http.ResponseWriter, r *http.Request) error {
				sw := &statusWriter{ResponseWriter: w}
				err := response(sw, r)

				status := sw.status
				if status == 0 {
					// Nothing written: the dispatcher renders err, or net/http sends 200.
					status = http.StatusOK
					if err != nil {
						status = http.StatusInternalServerError
					}
				}

				latency := time.Since(start)
				level := cfg.Level
				attrs := []slog.Attr{
					logger.Component(cfg.Component),
					logger.Method(req.Method),
					logger.Path(req.URL.Path),
					logger.Pattern(ctx.Pattern()),
					logger.Count("params", len(ctx.Params())),
					logger.StatusCode(status),
					logger.Latency(latency),
					logger.RemoteAddr(req.RemoteAddr),
					logger.RequestID(requestID),
				}

				switch {
				case status >= http.StatusInternalServerError:
					level = slog.LevelError
					attrs = append(attrs, logger.Error(err))
				case status >= http.StatusBadRequest:
					level = slog.LevelWarn
				case latency > cfg.SlowRequestThreshold:
					level = slog.LevelWarn
					attrs = append(attrs, slog.Bool("slow_request", true))
				}

				cfg.Logger.LogAttrs(req.Context(), level, "request handled", attrs...)
				return err
			}
		}
	}
}

// statusWriter records the status code sent through it.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.ResponseWriter.Write(b)
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
