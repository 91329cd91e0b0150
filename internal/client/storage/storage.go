// Package storage opens the local SQLite database, applies migrations and
// hands out the repositories built on top of it.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/lyade28/shopsync/internal/client/migrations"
	"github.com/lyade28/shopsync/internal/client/repositories/sales"
	"github.com/lyade28/shopsync/internal/client/repositories/snapshots"
)

// Repositories bundles every repository backed by the local database.
type Repositories struct {
	Sales     sales.Repository
	Snapshots snapshots.Repository
}

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if needed) the database at dsn, migrates it, and
// returns the handle plus the repositories bound to it.
func Open(ctx context.Context, dsn string) (*sql.DB, *Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	repos := &Repositories{
		Sales:     sales.NewSQLiteRepository(db),
		Snapshots: snapshots.NewSQLiteRepository(db),
	}
	return db, repos, nil
}
