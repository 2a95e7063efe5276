package storage

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrations embed.FS

// goose keeps its dialect and filesystem in package globals.
var migrateMu sync.Mutex

// runMigrations applies all pending migrations from dir using the given goose dialect.
func runMigrations(ctx context.Context, db *sql.DB, dialect, dir string) error {
	migrateMu.Lock()
	defer migrateMu.Unlock()

	goose.SetLogger(goose.NopLogger())
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}
