// Package server runs an http.Handler with graceful shutdown.
//
// Build a server from environment configuration and run it until the
// context ends:
//
//	var cfg server.Config
//	config.MustLoad(&cfg)
//
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, router))
//	return g.Wait()
//
// Setting SERVER_TLS_CERT_FILE and SERVER_TLS_KEY_FILE makes the server
// terminate TLS itself. Requests then reach the router with a TLS connection
// state and SSL-only routes match. Behind a TLS terminating proxy, serve plain
// http and enable forwarded scheme headers on the router instead.
//
// Cancelling the context passed to Start, or calling Stop, shuts the server
// down gracefully within the configured shutdown timeout.
package server
