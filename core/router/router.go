package router

import (
	"cmp"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/dmitrymomot/pathrouter/core/logger"
)

// Methods lists the HTTP methods a Router keeps a trie for.
var Methods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodHead,
	http.MethodOptions,
}

// Router maps (path, method, scheme) to a registered route.
//
// All Register calls must happen before the first Lookup. After that the
// Router is read-only and Lookup is safe for concurrent use without locking.
type Router[H, D any] struct {
	roots  map[string]*node[H, D]
	logger *slog.Logger
	seq    uint64
}

// Match is the result of a successful Lookup.
type Match[H, D any] struct {
	Handler     H
	DataHandler D
	Params      map[string]string // raw path variables, nil when the route has none
	Pattern     string            // route path as registered
}

// RouteInfo describes a registered route for introspection.
type RouteInfo struct {
	Method  string
	Pattern string
	SSLOnly bool
}

// New creates an empty router with one trie root per supported method.
func New[H, D any](opts ...Option) *Router[H, D] {
	cfg := options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)), // No-op logger by default
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &Router[H, D]{
		roots:  make(map[string]*node[H, D], len(Methods)),
		logger: cfg.logger,
	}
	for _, m := range Methods {
		r.roots[m] = &node[H, D]{}
	}
	return r
}

// Register adds route to the trie of each of its methods.
// Invalid routes are reported as *ConfigError and leave the router untouched.
func (r *Router[H, D]) Register(route Route[H, D]) error {
	methods, err := normalizeMethods(route)
	if err != nil {
		return err
	}

	segments, err := ParsePath(route.Path)
	if err != nil {
		return err
	}

	vars := make(map[string]int)
	priority := make([]uint8, len(segments))
	for i, seg := range segments {
		switch seg.Kind {
		case Literal:
			priority[i] = 1
		case Variable:
			if _, dup := vars[seg.Name]; dup {
				return configError(route.Path, seg.Text, ErrDuplicateVar)
			}
			vars[seg.Name] = i
		}
	}

	r.seq++
	l := &leaf[H, D]{
		handler:     route.Handler,
		dataHandler: route.DataHandler,
		vars:        vars,
		priority:    priority,
		sslOnly:     route.SSLOnly,
		pattern:     route.Path,
		seq:         r.seq,
	}

	for _, method := range methods {
		n := r.roots[method]
		for _, seg := range segments {
			n = n.child(seg)
		}
		if n.leaf == nil {
			n.leaf = l
			continue
		}

		r.logger.Warn("route replaced",
			logger.Method(method),
			logger.Pattern(route.Path),
			slog.String("previous_pattern", n.leaf.pattern),
		)
		// The replacement takes over the previous registration slot, so ties
		// with other routes resolve as before.
		replaced := *l
		replaced.seq = n.leaf.seq
		n.leaf = &replaced
	}

	r.logger.Debug("route registered",
		slog.Any("methods", methods),
		logger.Pattern(route.Path),
		slog.Bool("ssl_only", route.SSLOnly),
	)
	return nil
}

// MustRegister is like Register but panics on error.
// Use it during application assembly where a bad route must abort startup.
func (r *Router[H, D]) MustRegister(route Route[H, D]) {
	if err := r.Register(route); err != nil {
		panic(err)
	}
}

// RegisterAll registers routes in order and stops at the first error.
func (r *Router[H, D]) RegisterAll(routes iter.Seq[Route[H, D]]) error {
	for route := range routes {
		if err := r.Register(route); err != nil {
			return err
		}
	}
	return nil
}

// MustRegisterAll is like RegisterAll but panics on error.
func (r *Router[H, D]) MustRegisterAll(routes iter.Seq[Route[H, D]]) {
	if err := r.RegisterAll(routes); err != nil {
		panic(err)
	}
}

// Lookup finds the route for a request. The boolean is false when no route
// matches the path and method, or when the best match is SSL-only and scheme
// is not https. Lookup never panics and does not retry other candidates.
func (r *Router[H, D]) Lookup(path, method, scheme string) (Match[H, D], bool) {
	root, ok := r.roots[method]
	if !ok || root.isEmpty() {
		return Match[H, D]{}, false
	}

	parts := splitPath(path)

	var l *leaf[H, D]
	if len(parts) == 0 {
		l = root.leaf
	} else {
		l = descend(root, parts)
	}

	if l == nil || !l.allows(scheme) {
		return Match[H, D]{}, false
	}
	return l.match(parts), true
}

// descend walks the trie breadth-first one segment at a time, keeping every
// node that can still complete a route, and returns the best terminal leaf.
func descend[H, D any](root *node[H, D], parts []string) *leaf[H, D] {
	frontier := []*node[H, D]{root}
	var next []*node[H, D]

	for i, part := range parts {
		remaining := len(parts) - i
		next = next[:0]
		// Children of distinct trie nodes are distinct, so next never holds duplicates.
		for _, n := range frontier {
			next = n.appendCandidates(next, part, remaining)
		}
		if len(next) == 0 {
			return nil
		}
		frontier, next = next, frontier
	}

	best := frontier[0].leaf
	for _, n := range frontier[1:] {
		if n.leaf.outranks(best) {
			best = n.leaf
		}
	}
	return best
}

// Routes returns the registered routes ordered by method and pattern.
func (r *Router[H, D]) Routes() []RouteInfo {
	var out []RouteInfo
	for method, root := range r.roots {
		root.walk(func(l *leaf[H, D]) {
			out = append(out, RouteInfo{Method: method, Pattern: l.pattern, SSLOnly: l.sslOnly})
		})
	}
	slices.SortFunc(out, func(a, b RouteInfo) int {
		return cmp.Or(cmp.Compare(a.Method, b.Method), cmp.Compare(a.Pattern, b.Pattern))
	})
	return out
}

// Len returns the number of (method, route) pairs registered.
func (r *Router[H, D]) Len() int {
	n := 0
	for _, root := range r.roots {
		root.walk(func(*leaf[H, D]) { n++ })
	}
	return n
}

func normalizeMethods[H, D any](route Route[H, D]) ([]string, error) {
	if len(route.Methods) == 0 {
		return nil, configError(route.Path, "", ErrNoMethods)
	}

	methods := make([]string, 0, len(route.Methods))
	for _, m := range route.Methods {
		m = strings.ToUpper(strings.TrimSpace(m))
		if !slices.Contains(Methods, m) {
			return nil, configError(route.Path, "", fmt.Errorf("%w: %q", ErrInvalidMethod, m))
		}
		if !slices.Contains(methods, m) {
			methods = append(methods, m)
		}
	}
	return methods, nil
}

// isHTTPS matches the scheme exactly; callers pass it lowercased.
func isHTTPS(scheme string) bool {
	return scheme == "https"
}
