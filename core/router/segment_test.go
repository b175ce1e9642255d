package router_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pathrouter/core/router"
)

func TestParsePath(t *testing.T) {
	t.Parallel()

	segments, err := router.ParsePath("/api//users/<id:int>/<name>/(v[0-9]+)/<lang:([a-z]{2})>/")
	require.NoError(t, err)
	require.Len(t, segments, 6)

	tests := []struct {
		kind router.SegmentKind
		text string
		name string
		typ  string
	}{
		{router.Literal, "api", "", ""},
		{router.Literal, "users", "", ""},
		{router.Variable, "<id:int>", "id", "int"},
		{router.Variable, "<name>", "name", "str"},
		{router.Pattern, "(v[0-9]+)", "", "(v[0-9]+)"},
		{router.Variable, "<lang:([a-z]{2})>", "lang", "([a-z]{2})"},
	}

	for i, tt := range tests {
		seg := segments[i]
		assert.Equal(t, tt.kind, seg.Kind, "segment %d", i)
		assert.Equal(t, tt.text, seg.Text, "segment %d", i)
		assert.Equal(t, tt.name, seg.Name, "segment %d", i)
		assert.Equal(t, tt.typ, seg.Type, "segment %d", i)

		if tt.kind == router.Literal {
			assert.Nil(t, seg.Regexp())
		} else {
			assert.NotNil(t, seg.Regexp())
		}
	}

	assert.True(t, segments[5].Regexp().MatchString("en"))
	assert.False(t, segments[5].Regexp().MatchString("xen"))
}

func TestParsePathRoot(t *testing.T) {
	t.Parallel()

	for _, p := range []string{"", "/", "///"} {
		segments, err := router.ParsePath(p)
		require.NoError(t, err)
		assert.Empty(t, segments)
	}
}

func TestParsePathLiteralLookalikes(t *testing.T) {
	t.Parallel()

	// Unbalanced delimiters are not variables or patterns.
	segments, err := router.ParsePath("/<id/id>/(x/x)/a<b>c")
	require.NoError(t, err)
	for _, seg := range segments {
		assert.Equal(t, router.Literal, seg.Kind, seg.Text)
	}
}

func TestSegmentKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "literal", router.Literal.String())
	assert.Equal(t, "variable", router.Variable.String())
	assert.Equal(t, "pattern", router.Pattern.String())
	assert.Equal(t, "SegmentKind(9)", router.SegmentKind(9).String())
}

func TestConfigErrorMessage(t *testing.T) {
	t.Parallel()

	_, err := router.ParsePath("/users/<id:weird>")
	require.Error(t, err)
	assert.Equal(t, `router: unknown route path variable type: "weird" in "/users/<id:weird>" (segment "<id:weird>")`, err.Error())
}
