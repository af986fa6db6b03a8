package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5"
	tern "github.com/jackc/tern/v2/migrate"
	"github.com/rs/zerolog"

	"github.com/deppfellow/travel-api/internal/config"
)

// The schema is fixed and single-version. The binary carries it, so no
// files are read at runtime.
//
//go:embed migrations/*.sql
var migrations embed.FS

//go:embed schema/sqlite.sql
var sqliteSchema string

// EnsureSchema creates the destinations table when it does not exist yet.
func EnsureSchema(ctx context.Context, logger *zerolog.Logger, cfg *config.Config, db *Database) error {
	switch db.Driver {
	case config.DriverPostgres:
		return migratePostgres(ctx, logger, cfg)
	case config.DriverSQLite:
		if _, err := db.SQLite.ExecContext(ctx, sqliteSchema); err != nil {
			return fmt.Errorf("creating sqlite schema: %w", err)
		}
		logger.Info().Str("driver", config.DriverSQLite).Msg("database schema ready")
		return nil
	default:
		return fmt.Errorf("unsupported database driver %q", db.Driver)
	}
}

// migratePostgres applies the embedded schema with jackc/tern over a
// single connection.
func migratePostgres(ctx context.Context, logger *zerolog.Logger, cfg *config.Config) error {
	conn, err := pgx.Connect(ctx, postgresDSN(&cfg.Database))
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	m, err := tern.NewMigrator(ctx, conn, "schema_version")
	if err != nil {
		return fmt.Errorf("constructing database migrator: %w", err)
	}

	subtree, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("retrieving database schema subtree: %w", err)
	}

	if err := m.LoadMigrations(subtree); err != nil {
		return fmt.Errorf("loading database schema: %w", err)
	}

	from, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("retrieving current database schema version: %w", err)
	}

	if err := m.Migrate(ctx); err != nil {
		return err
	}

	if from == int32(len(m.Migrations)) {
		logger.Info().Msgf("database schema up to date, version %d", len(m.Migrations))
	} else {
		logger.Info().Msgf("created database schema, from %d to %d", from, len(m.Migrations))
	}
	return nil
}
