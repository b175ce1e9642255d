package router

import (
	"regexp"
	"slices"
)

// node is one level of a per-method routing trie.
// A node holding a leaf may still have children: /users and /users/<id>
// share the /users node.
type node[H, D any] struct {
	// literal children keyed by exact segment text
	literal map[string]*node[H, D]

	// pattern children in first-registration order
	patterns []patternEdge[H, D]

	// set when a route terminates at this node
	leaf *leaf[H, D]
}

type patternEdge[H, D any] struct {
	key   string // anchored regex source
	rex   *regexp.Regexp
	child *node[H, D]
}

// leaf carries everything Lookup returns for a matched route.
type leaf[H, D any] struct {
	handler     H
	dataHandler D

	// variable name -> index into the non-empty path segments
	vars map[string]int

	// one entry per segment: 1 for literal, 0 for variable or pattern
	priority []uint8

	sslOnly bool
	pattern string

	// registration sequence, breaks ties between equal priority vectors
	seq uint64
}

func (n *node[H, D]) isEmpty() bool {
	return n.leaf == nil && len(n.literal) == 0 && len(n.patterns) == 0
}

// child returns the child for seg, creating it when missing.
func (n *node[H, D]) child(seg Segment) *node[H, D] {
	if seg.Kind == Literal {
		if c, ok := n.literal[seg.Text]; ok {
			return c
		}
		if n.literal == nil {
			n.literal = make(map[string]*node[H, D])
		}
		c := &node[H, D]{}
		n.literal[seg.Text] = c
		return c
	}

	key := seg.key()
	for _, e := range n.patterns {
		if e.key == key {
			return e.child
		}
	}
	c := &node[H, D]{}
	n.patterns = append(n.patterns, patternEdge[H, D]{key: key, rex: seg.rex, child: c})
	return c
}

// appendCandidates appends the children of n that match part and may still
// lead to a route. With one segment remaining only leaf-bearing children qualify.
func (n *node[H, D]) appendCandidates(dst []*node[H, D], part string, remaining int) []*node[H, D] {
	if c, ok := n.literal[part]; ok && (remaining > 1 || c.leaf != nil) {
		dst = append(dst, c)
	}
	for _, e := range n.patterns {
		if remaining == 1 && e.child.leaf == nil {
			continue
		}
		if e.rex.MatchString(part) {
			dst = append(dst, e.child)
		}
	}
	return dst
}

// walk visits every leaf below and including n.
func (n *node[H, D]) walk(fn func(l *leaf[H, D])) {
	if n.leaf != nil {
		fn(n.leaf)
	}
	for _, c := range n.literal {
		c.walk(fn)
	}
	for _, e := range n.patterns {
		e.child.walk(fn)
	}
}

// outranks reports whether l should be preferred over other when both
// terminate on the same request path. Literal segments win over variables,
// earlier positions first; equal vectors fall back to registration order.
func (l *leaf[H, D]) outranks(other *leaf[H, D]) bool {
	if c := slices.Compare(l.priority, other.priority); c != 0 {
		return c > 0
	}
	return l.seq < other.seq
}

// allows applies the SSL gate.
func (l *leaf[H, D]) allows(scheme string) bool {
	return !l.sslOnly || isHTTPS(scheme)
}

func (l *leaf[H, D]) match(parts []string) Match[H, D] {
	m := Match[H, D]{
		Handler:     l.handler,
		DataHandler: l.dataHandler,
		Pattern:     l.pattern,
	}
	if len(l.vars) > 0 {
		m.Params = make(map[string]string, len(l.vars))
		for name, i := range l.vars {
			m.Params[name] = parts[i]
		}
	}
	return m
}
