package mux_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pathrouter/core/handler"
	"github.com/dmitrymomot/pathrouter/core/mux"
)

var _ handler.Context = (*mux.Context)(nil)

func TestContext(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/repos/acme/api", nil)
	w := httptest.NewRecorder()
	ctx := mux.NewContext(w, req, mux.MatchInfo{
		Params:  map[string]string{"org": "acme", "repo": "api"},
		Pattern: "/repos/<org>/<repo>",
		Scheme:  "http",
	})

	assert.Same(t, req, ctx.Request())
	assert.Equal(t, w, ctx.ResponseWriter())
	assert.Equal(t, "acme", ctx.Param("org"))
	assert.Equal(t, "api", ctx.Param("repo"))
	assert.Empty(t, ctx.Param("missing"))
	assert.Len(t, ctx.Params(), 2)
	assert.Equal(t, "/repos/<org>/<repo>", ctx.Pattern())
}

func TestContextSetValue(t *testing.T) {
	t.Parallel()

	type key struct{}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := mux.NewContext(httptest.NewRecorder(), req, mux.MatchInfo{})

	assert.Nil(t, ctx.Value(key{}))
	ctx.SetValue(key{}, "v")

	assert.Equal(t, "v", ctx.Value(key{}))
	assert.Equal(t, "v", ctx.Request().Context().Value(key{}))
	assert.Nil(t, req.Context().Value(key{}), "original request must stay untouched")
}

func TestContextDelegatesCancellation(t *testing.T) {
	t.Parallel()

	parent, cancel := context.WithTimeout(context.Background(), time.Minute)
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(parent)
	ctx := mux.NewContext(httptest.NewRecorder(), req, mux.MatchInfo{})

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
	assert.NoError(t, ctx.Err())

	cancel()
	<-ctx.Done()
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}
