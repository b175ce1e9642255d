// Package router implements the request-routing core: a per-method trie that maps
// an incoming (path, method, scheme) triple to a previously registered route.
//
// The router stores handler and data-handler references as opaque values of the
// generic types H and D. It never calls them; Lookup simply hands them back together
// with the captured path variables.
//
// # Path Syntax
//
// A route path is split on '/' and empty components are ignored. Each component is
//
//	users              literal, matched by exact equality
//	<name>             variable of type str
//	<name:type>        variable of type int, float, uuid, slug or str
//	<name:(regex)>     variable matched by a custom expression
//	(regex)            anonymous pattern, matched but not captured
//
// Every expression has to match the whole segment. Builtin types:
//
//	str    one or more letters, digits or underscores
//	int    optional sign followed by digits
//	float  optional sign, digits, '.', digits
//	uuid   version 4 UUID in lowercase hex
//	slug   letters, digits, underscores and hyphens
//
// An unknown type or a regex that does not compile is reported by Register as a
// *ConfigError, so bad routes stop the application before it serves traffic.
//
// # Basic Usage
//
//	routes := router.NewRoutes[http.HandlerFunc, any]()
//	routes.Get("/", home)
//	routes.Get("/users/<id:int>", showUser)
//	routes.Get("/users/me", showMe)
//	routes.Post("/billing/<account:uuid>", charge, router.SSLOnly[http.HandlerFunc, any]())
//
//	r := router.New[http.HandlerFunc, any](router.WithLogger(log))
//	r.MustRegisterAll(routes.All())
//
//	m, ok := r.Lookup("/users/42", http.MethodGet, "https")
//	// m.Handler == showUser, m.Params == map[string]string{"id": "42"}
//
// # Matching
//
// Lookup descends the method's trie one segment at a time, following the literal
// child with the same text and every pattern child whose expression matches. Before the
// last segment only children that terminate a route are kept. When several routes end
// on the same request path, the one with literal segments in earlier positions wins
// (/users/me beats /users/<id>); routes with identical shapes fall back to registration
// order. An SSL-only winner requested over plain http yields no match.
//
// Captured values are raw strings. Converting them is up to the caller.
//
// # Concurrency
//
// Register all routes during application assembly. Once the first Lookup runs the
// router must not be modified; from then on Lookup is safe for concurrent use.
package router
