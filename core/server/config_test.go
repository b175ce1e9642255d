package server_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pathrouter/core/server"
)

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		srv, err := server.NewFromConfig(server.DefaultConfig())
		require.NoError(t, err)
		assert.Equal(t, ":8080", srv.Addr())
	})

	t.Run("custom values and overriding options", func(t *testing.T) {
		t.Parallel()

		cfg := server.Config{
			Addr:            ":9000",
			ReadTimeout:     10 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		}
		srv, err := server.NewFromConfig(cfg, server.WithShutdownTimeout(time.Second))
		require.NoError(t, err)
		assert.NotNil(t, srv)
	})

	t.Run("missing address", func(t *testing.T) {
		t.Parallel()

		_, err := server.NewFromConfig(server.Config{ReadTimeout: time.Second})
		assert.ErrorIs(t, err, server.ErrMissingAddress)
	})

	t.Run("incomplete tls", func(t *testing.T) {
		t.Parallel()

		_, err := server.NewFromConfig(server.Config{Addr: ":8443", TLSCertFile: "cert.pem"})
		assert.ErrorIs(t, err, server.ErrIncompleteTLS)

		_, err = server.NewFromConfig(server.Config{Addr: ":8443", TLSKeyFile: "key.pem"})
		assert.ErrorIs(t, err, server.ErrIncompleteTLS)
	})

	t.Run("unreadable certificate", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		cert := filepath.Join(dir, "cert.pem")
		key := filepath.Join(dir, "key.pem")
		require.NoError(t, os.WriteFile(cert, []byte("not a cert"), 0o600))
		require.NoError(t, os.WriteFile(key, []byte("not a key"), 0o600))

		_, err := server.NewFromConfig(server.Config{Addr: ":8443", TLSCertFile: cert, TLSKeyFile: key})
		assert.ErrorIs(t, err, server.ErrFailedLoadCert)
	})
}

func TestTLSConfig(t *testing.T) {
	t.Parallel()

	cfg := server.TLSConfig()
	assert.GreaterOrEqual(t, cfg.MinVersion, uint16(0x0303)) // TLS 1.2
	assert.NotEmpty(t, cfg.CipherSuites)
	assert.Empty(t, cfg.Certificates)
}
