package database

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5"
	tern "github.com/jackc/tern/v2/migrate"
	"github.com/rs/zerolog"
)

//go:embed migrations/*.sql
var migrations embed.FS

const versionTable = "schema_version"

// ErrSchemaOutdated means the database is behind the embedded migrations.
var ErrSchemaOutdated = errors.New("database schema is outdated")

// Migrate applies every pending embedded migration to the database at dsn.
func Migrate(ctx context.Context, logger *zerolog.Logger, dsn string) error {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return fmt.Errorf("connect for migrations: %w", err)
	}
	defer conn.Close(ctx)

	m, err := tern.NewMigrator(ctx, conn, versionTable)
	if err != nil {
		return fmt.Errorf("constructing database migrator: %w", err)
	}

	subtree, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("retrieving database migrations subtree: %w", err)
	}

	if err := m.LoadMigrations(subtree); err != nil {
		return fmt.Errorf("loading database migrations: %w", err)
	}

	from, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("retrieving current database migration version: %w", err)
	}

	latest := int32(len(m.Migrations))
	if from == latest {
		logger.Info().Int32("version", latest).Msg("database schema up to date")
		return nil
	}

	m.OnStart = func(sequence int32, name, direction, _ string) {
		logger.Info().
			Int32("sequence", sequence).
			Str("name", name).
			Str("direction", direction).
			Msg("applying migration")
	}

	if err := m.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate schema from version %d: %w", from, err)
	}

	logger.Info().Int32("from", from).Int32("to", latest).Msg("database schema migrated")
	return nil
}

// LatestSchemaVersion is the version the embedded migrations lead to.
func LatestSchemaVersion() (int32, error) {
	files, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		return 0, err
	}
	return int32(len(files)), nil
}

// CheckSchema returns ErrSchemaOutdated when the connected database has not
// been migrated to LatestSchemaVersion.
func (db *Database) CheckSchema(ctx context.Context) error {
	latest, err := LatestSchemaVersion()
	if err != nil {
		return err
	}

	var current int32
	if err := db.Pool.QueryRow(ctx, `SELECT version FROM `+versionTable).Scan(&current); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	if current < latest {
		return fmt.Errorf("version %d of %d: %w", current, latest, ErrSchemaOutdated)
	}

	return nil
}
