package router

import "log/slog"

type options struct {
	logger *slog.Logger
}

// Option configures a Router during creation.
type Option func(*options)

// WithLogger sets the logger used to report registrations and replaced routes.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
