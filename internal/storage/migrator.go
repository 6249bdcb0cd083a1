package storage

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const migrationsDir = "migrations"

// migration is one goose command run against the embedded schema.
type migration struct {
	operation string
	verb      string
	run       func(ctx context.Context, db *sql.DB, dir string) error
}

var (
	migrateUp = migration{"storage.RunMigrations", "run migrations",
		func(ctx context.Context, db *sql.DB, dir string) error { return goose.UpContext(ctx, db, dir) }}
	migrateDown = migration{"storage.RollbackMigration", "rollback migration",
		func(ctx context.Context, db *sql.DB, dir string) error { return goose.DownContext(ctx, db, dir) }}
	migrateStatus = migration{"storage.Status", "check migration status",
		func(ctx context.Context, db *sql.DB, dir string) error { return goose.StatusContext(ctx, db, dir) }}
)

func (m migration) apply(ctx context.Context, db *sql.DB, dir string, logger *zap.Logger) error {
	logger.Info("Migration started", zap.String("operation", m.operation), zap.String("dir", dir))

	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("%s: failed to set dialect: %w", m.operation, err)
	}

	if err := m.run(ctx, db, dir); err != nil {
		return fmt.Errorf("%s: failed to %s: %w", m.operation, m.verb, err)
	}

	logger.Info("Migration finished", zap.String("operation", m.operation))
	return nil
}

func RunMigrations(ctx context.Context, db *sql.DB, logger *zap.Logger) error {
	return migrateUp.apply(ctx, db, migrationsDir, logger)
}

func RollbackMigration(ctx context.Context, db *sql.DB, logger *zap.Logger) error {
	return migrateDown.apply(ctx, db, migrationsDir, logger)
}

func Status(ctx context.Context, db *sql.DB, logger *zap.Logger) error {
	return migrateStatus.apply(ctx, db, migrationsDir, logger)
}
