// Package testutil builds the in-memory stores and servers used by tests.
package testutil

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/travel-api/internal/config"
	"github.com/deppfellow/travel-api/internal/database"
)

// NewConfig returns a valid configuration backed by an in-memory sqlite
// store.
func NewConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{
		Primary: config.Primary{Env: "test"},
		Server: config.ServerConfig{
			Port:               "0",
			ReadTimeout:        5,
			WriteTimeout:       5,
			IdleTimeout:        5,
			CORSAllowedOrigins: []string{"*"},
		},
		Database: config.DatabaseConfig{
			Driver: config.DriverSQLite,
			Path:   ":memory:",
		},
	}
	require.NoError(t, cfg.Validate())

	return cfg
}

// NewLogger returns a logger that discards everything.
func NewLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

// NewSQLiteDatabase opens a fresh in-memory store with the schema applied.
// It is closed when the test ends.
func NewSQLiteDatabase(t *testing.T) *database.Database {
	t.Helper()

	cfg := NewConfig(t)
	logger := NewLogger()

	db, err := database.New(cfg, logger, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, database.EnsureSchema(t.Context(), logger, cfg, db))

	return db
}
