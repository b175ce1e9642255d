package router

import (
	"fmt"
	"regexp"
	"strings"
)

// SegmentKind classifies one component of a route path.
type SegmentKind uint8

const (
	Literal  SegmentKind = iota // /users
	Variable                    // /<id:int>
	Pattern                     // /([a-z]{2})
)

// String returns the kind name.
func (k SegmentKind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Variable:
		return "variable"
	case Pattern:
		return "pattern"
	default:
		return fmt.Sprintf("SegmentKind(%d)", uint8(k))
	}
}

// Builtin variable types. Every expression matches the whole segment.
var builtinTypes = map[string]*regexp.Regexp{
	"str":   regexp.MustCompile(`^[\p{L}\p{N}_]+$`),
	"int":   regexp.MustCompile(`^[-+]?[0-9]+$`),
	"float": regexp.MustCompile(`^[-+]?[0-9]+\.[0-9]+$`),
	"uuid":  regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`),
	"slug":  regexp.MustCompile(`^[-\p{L}\p{N}_]+$`),
}

const defaultVarType = "str"

// Segment is one parsed, non-empty component of a route path.
type Segment struct {
	Kind SegmentKind
	Text string // component as written in the route path
	Name string // variable name, Variable only
	Type string // builtin type name or custom regex, Variable and Pattern only

	rex *regexp.Regexp
}

// Regexp returns the anchored expression a Variable or Pattern segment is matched with.
// It is nil for literals.
func (s Segment) Regexp() *regexp.Regexp {
	return s.rex
}

// key identifies the trie edge for the segment. Pattern edges are shared
// between routes whose anchored expressions have the same source.
func (s Segment) key() string {
	if s.rex != nil {
		return s.rex.String()
	}
	return s.Text
}

// ParsePath splits a route path on '/' and classifies each non-empty component.
// Empty components are dropped, so leading, trailing and repeated slashes are ignored.
// Any invalid segment is reported as a *ConfigError.
func ParsePath(path string) ([]Segment, error) {
	parts := splitPath(path)
	if len(parts) == 0 {
		return nil, nil
	}

	segments := make([]Segment, 0, len(parts))
	for _, part := range parts {
		seg, err := parseSegment(part)
		if err != nil {
			return nil, configError(path, part, err)
		}
		segments = append(segments, seg)
	}
	return segments, nil
}

func parseSegment(part string) (Segment, error) {
	switch {
	case enclosed(part, '<', '>'):
		return parseVariable(part)
	case enclosed(part, '(', ')'):
		rex, err := compileSegmentRegexp(part)
		if err != nil {
			return Segment{}, err
		}
		return Segment{Kind: Pattern, Text: part, Type: part, rex: rex}, nil
	default:
		return Segment{Kind: Literal, Text: part}, nil
	}
}

// parseVariable handles <name>, <name:type> and <name:(regex)>.
func parseVariable(part string) (Segment, error) {
	name, typ, found := strings.Cut(part[1:len(part)-1], ":")
	if !found {
		typ = defaultVarType
	}
	if name == "" {
		return Segment{}, ErrInvalidVarName
	}

	seg := Segment{Kind: Variable, Text: part, Name: name, Type: typ}
	if rex, ok := builtinTypes[typ]; ok {
		seg.rex = rex
		return seg, nil
	}
	if !enclosed(typ, '(', ')') {
		return Segment{}, fmt.Errorf("%w: %q", ErrUnknownVarType, typ)
	}

	rex, err := compileSegmentRegexp(typ)
	if err != nil {
		return Segment{}, err
	}
	seg.rex = rex
	return seg, nil
}

// compileSegmentRegexp anchors a custom expression so it has to match the entire segment.
func compileSegmentRegexp(expr string) (*regexp.Regexp, error) {
	rex, err := regexp.Compile("^(?:" + expr + ")$")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRegexp, err)
	}
	return rex, nil
}

func enclosed(s string, first, last byte) bool {
	return len(s) >= 2 && s[0] == first && s[len(s)-1] == last
}

// splitPath returns the non-empty '/' separated components of path.
func splitPath(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool { return r == '/' })
}
