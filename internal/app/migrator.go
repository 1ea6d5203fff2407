package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/m04kA/SPA-BedService/migrations"
)

// Migrator обертка над goose с вшитыми миграциями
type Migrator struct {
	db     *sql.DB
	logger Logger
}

// NewMigrator создает новый мигратор
func NewMigrator(db *sql.DB, logger Logger) (*Migrator, error) {
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, fmt.Errorf("set goose dialect: %w", err)
	}
	goose.SetBaseFS(migrations.FS)

	return &Migrator{
		db:     db,
		logger: logger,
	}, nil
}

// Run применяет все непримененные миграции
func (m *Migrator) Run(ctx context.Context) error {
	m.logger.Info("Migrator: applying database migrations")

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, m.db)
	if err != nil {
		return fmt.Errorf("get version: %w", err)
	}

	m.logger.Info("Migrator: migrations applied, version=%d", version)
	return nil
}
