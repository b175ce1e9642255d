// Package logger builds slog loggers and provides attribute helpers used across
// the router, the dispatcher and the middleware.
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithJSONFormatter(),
//		logger.WithAttr(slog.String("service", "api")),
//	)
//
//	log.Info("request dispatched",
//		logger.Method(r.Method),
//		logger.Path(r.URL.Path),
//		logger.Pattern("/users/<id:int>"),
//		logger.StatusCode(200),
//		logger.Latency(time.Since(start)),
//	)
//
// Helpers that receive a zero value (nil error, empty ID) return an empty
// slog.Attr, which slog omits from the output.
package logger
