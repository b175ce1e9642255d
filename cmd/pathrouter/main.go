// Command pathrouter serves a route table built from code and an optional
// YAML manifest. Every matched route answers with a JSON description of the
// match, which makes the binary handy for checking how paths resolve.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/pathrouter/core/config"
	"github.com/dmitrymomot/pathrouter/core/logger"
	"github.com/dmitrymomot/pathrouter/core/manifest"
	"github.com/dmitrymomot/pathrouter/core/mux"
	"github.com/dmitrymomot/pathrouter/core/server"
	"github.com/dmitrymomot/pathrouter/middleware"
)

// AppConfig holds process level settings. Server settings live in server.Config.
type AppConfig struct {
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat  string `env:"LOG_FORMAT" envDefault:"text"`
	RoutesFile string `env:"ROUTES_FILE"`
	TrustProxy bool   `env:"TRUST_PROXY_HEADERS" envDefault:"false"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var (
		appCfg AppConfig
		srvCfg server.Config
	)
	config.MustLoad(&appCfg)
	config.MustLoad(&srvCfg)

	log := newLogger(appCfg)
	slog.SetDefault(log)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	r, err := newRouter(appCfg, log, reg)
	if err != nil {
		return err
	}
	log.Info("routes registered", logger.Count("routes", len(r.Routes())))

	srv, err := server.NewFromConfig(srvCfg, server.WithLogger(log.With(logger.Component("server"))))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(srv.Run(ctx, r))

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func newLogger(cfg AppConfig) *slog.Logger {
	opts := []logger.Option{
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithAttr(slog.String("service", "pathrouter")),
	}
	if cfg.LogFormat == "json" {
		opts = append(opts, logger.WithJSONFormatter())
	}
	return logger.New(opts...)
}

// newRouter assembles the dispatcher: builtin routes first, then the manifest.
func newRouter(cfg AppConfig, log *slog.Logger, reg *prometheus.Registry) (mux.Router[*mux.Context], error) {
	opts := []mux.Option[*mux.Context]{
		mux.WithLogger[*mux.Context](log.With(logger.Component("router"))),
		mux.WithMetrics[*mux.Context](reg),
		mux.WithMiddleware(
			middleware.RequestID[*mux.Context](),
			middleware.LoggingWithLogger[*mux.Context](log),
		),
	}
	if cfg.TrustProxy {
		opts = append(opts, mux.WithTrustedProxyHeaders[*mux.Context]())
	}
	r := mux.New(opts...)

	r.Include(builtinRoutes(log, reg, func() int { return len(r.Routes()) }))

	if cfg.RoutesFile != "" {
		routes, err := manifest.Load(cfg.RoutesFile, handlerRegistry())
		if err != nil {
			return nil, fmt.Errorf("load routes from %s: %w", cfg.RoutesFile, err)
		}
		if err := includeRoutes(r, routes); err != nil {
			return nil, fmt.Errorf("register routes from %s: %w", cfg.RoutesFile, err)
		}
	}

	return r, nil
}

// includeRoutes turns registration panics into errors so a bad manifest is
// reported like any other startup failure.
func includeRoutes(r mux.Router[*mux.Context], routes *mux.Routes[*mux.Context]) (err error) {
	defer func() {
		if p := recover(); p != nil {
			if e, ok := p.(error); ok {
				err = e
				return
			}
			panic(p)
		}
	}()
	r.Include(routes)
	return nil
}
