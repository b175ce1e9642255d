package health

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/pathrouter/core/handler"
	"github.com/dmitrymomot/pathrouter/core/logger"
)

// Check reports whether one dependency is usable.
type Check func(ctx context.Context) error

// DefaultTimeout bounds a readiness probe when the request has no deadline.
const DefaultTimeout = 5 * time.Second

// ErrNoRoutes is returned by Routes for an empty route table.
var ErrNoRoutes = errors.New("no routes registered")

// Readiness runs all checks concurrently and answers 200 "READY" when every
// check passes, 503 "NOT READY" otherwise.
func Readiness[C handler.Context](log *slog.Logger, checks ...Check) handler.HandlerFunc[C] {
	if log == nil {
		log = logger.Nop()
	}
	return func(ctx C) handler.Response {
		if err := runChecks(ctx, checks); err != nil {
			log.ErrorContext(ctx, "readiness check failed", logger.Error(err))
			return text(http.StatusServiceUnavailable, "NOT READY")
		}
		return text(http.StatusOK, "READY")
	}
}

func runChecks(ctx context.Context, checks []Check) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultTimeout)
		defer cancel()
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, check := range checks {
		g.Go(func() error { return check(ctx) })
	}
	return g.Wait()
}

// Routes is a Check that fails until count reports at least one route.
//
//	health.Routes(func() int { return len(r.Routes()) })
func Routes(count func() int) Check {
	return func(context.Context) error {
		if count() == 0 {
			return ErrNoRoutes
		}
		return nil
	}
}
