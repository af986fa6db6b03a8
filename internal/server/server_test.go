package server

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/travel-api/internal/testutil"
)

func TestNew(t *testing.T) {
	t.Parallel()

	cfg := testutil.NewConfig(t)

	srv, err := New(cfg, testutil.NewLogger(), nil)
	require.NoError(t, err)

	require.NoError(t, srv.DB.Ping(t.Context()))

	var count int
	require.NoError(t, srv.DB.SQLite.QueryRowContext(t.Context(), "SELECT COUNT(*) FROM destinations").Scan(&count))
	assert.Zero(t, count)

	require.NoError(t, srv.Shutdown(t.Context()))
}

func TestStartWithoutSetup(t *testing.T) {
	t.Parallel()

	srv, err := New(testutil.NewConfig(t), testutil.NewLogger(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = srv.Shutdown(t.Context()) })

	require.Error(t, srv.Start())
}

func TestSetupHTTPServer(t *testing.T) {
	t.Parallel()

	cfg := testutil.NewConfig(t)
	cfg.Server.Port = "9090"

	srv, err := New(cfg, testutil.NewLogger(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = srv.DB.Close() })

	srv.SetupHTTPServer(http.NotFoundHandler())

	require.NotNil(t, srv.httpServer)
	assert.Equal(t, ":9090", srv.httpServer.Addr)
	assert.Equal(t, 5*time.Second, srv.httpServer.ReadTimeout)
	assert.Equal(t, 5*time.Second, srv.httpServer.WriteTimeout)
	assert.Equal(t, 5*time.Second, srv.httpServer.IdleTimeout)
}
