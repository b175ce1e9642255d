// Package health provides probe handlers for a pathrouter dispatcher.
//
//	routes.Get("/health/live", health.Liveness[*mux.Context])
//	routes.Head("/ping", health.NoContent[*mux.Context])
//	routes.Get("/health/ready", health.Readiness[*mux.Context](log,
//		health.Routes(func() int { return len(r.Routes()) }),
//	))
//
// Readiness checks run concurrently and share the request deadline, or
// DefaultTimeout when the request has none.
package health
