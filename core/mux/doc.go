// Package mux turns the routing trie from core/router into an http.Handler.
//
// It is the dispatch side of routing: it derives the request scheme, asks the
// trie for a match, builds the request context with the captured path variables,
// runs the route's data handler and the middleware-wrapped handler, and renders
// the response. Requests that match nothing, or that hit an SSL-only route over
// plain http, go to the error handler with ErrNotFound (404 by default).
//
// # Basic Usage
//
//	r := mux.New[*mux.Context](
//		mux.WithLogger[*mux.Context](log),
//		mux.WithMetrics[*mux.Context](prometheus.DefaultRegisterer),
//	)
//
//	r.Get("/", home)
//	r.Get("/users/<id:int>", showUser)
//	r.Get("/users/me", showMe) // wins over /users/<id:int> for "me"
//	r.Post("/payments/<id:uuid>", pay,
//		mux.SSLOnly[*mux.Context](),
//		mux.WithDataHandler(validatePayment),
//	)
//
//	http.ListenAndServe(":8080", r)
//
// # Route Tables
//
// Sub-applications can build their own tables and be included in order:
//
//	users := mux.NewRoutes[*mux.Context]()
//	users.Get("/users/<id:int>", showUser)
//	users.Delete("/users/<id:int>", deleteUser)
//
//	r.Include(users)
//
// # Configuration Errors
//
// Invalid routes (unknown variable type, bad regex, unsupported method) panic
// with a *router.ConfigError at registration, before any request is served.
//
// # Scheme Detection
//
// A request is https when it arrived over TLS. Behind a TLS-terminating proxy use
// WithTrustedProxyHeaders so X-Forwarded-Proto is honoured.
package mux
