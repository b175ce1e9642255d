package server_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pathrouter/core/server"
)

func startServer(t *testing.T, srv *server.Server, h http.Handler) (context.CancelFunc, <-chan error) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx, h) }()

	select {
	case <-srv.Ready():
	case err := <-done:
		cancel()
		t.Fatalf("server failed to start: %v", err)
	case <-time.After(5 * time.Second):
		cancel()
		t.Fatal("server did not become ready")
	}
	return cancel, done
}

func TestServerServesAndStopsOnCancel(t *testing.T) {
	t.Parallel()

	srv := server.New("127.0.0.1:0", server.WithShutdownTimeout(time.Second))
	cancel, done := startServer(t, srv, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "pong")
	}))

	resp, err := http.Get("http://" + srv.Addr() + "/ping")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, "pong", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServerAlreadyRunning(t *testing.T) {
	t.Parallel()

	srv := server.New("127.0.0.1:0")
	cancel, done := startServer(t, srv, http.NotFoundHandler())
	defer func() {
		cancel()
		<-done
	}()

	err := srv.Start(context.Background(), http.NotFoundHandler())
	assert.ErrorIs(t, err, server.ErrServerAlreadyRunning)
}

func TestServerListenError(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	srv := server.New(ln.Addr().String())
	err = srv.Start(context.Background(), http.NotFoundHandler())
	assert.ErrorIs(t, err, server.ErrListen)
}

func TestServerStopBeforeStart(t *testing.T) {
	t.Parallel()

	srv := server.New(":0")
	assert.NoError(t, srv.Stop())
	assert.Equal(t, ":0", srv.Addr())
}

func TestServerRunForErrgroup(t *testing.T) {
	t.Parallel()

	srv := server.New("127.0.0.1:0")
	ctx, cancel := context.WithCancel(context.Background())
	run := srv.Run(ctx, http.NotFoundHandler())

	done := make(chan error, 1)
	go func() { done <- run() }()

	<-srv.Ready()
	cancel()
	assert.NoError(t, <-done)
}
