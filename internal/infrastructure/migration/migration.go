package migration

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v4/pgxpool"
)

// RunMigrations creates the exports schema. It is safe to run on every start.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	if pool == nil {
		return nil
	}
	slog.Info("Starting database migrations")

	migrations := []Migration{
		{Name: "create_exports", Up: execAll(createExports)},
		{Name: "index_exports_session", Up: execAll(indexExportsSession)},
	}

	for _, m := range migrations {
		if err := m.Up(ctx, pool); err != nil {
			slog.Error("Migration failed", "name", m.Name, "error", err)
			return err
		}
		slog.Info("Migration completed", "name", m.Name)
	}

	slog.Info("All migrations completed successfully")
	return nil
}

// Migration is one named, idempotent schema step.
type Migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

const createExports = `
	CREATE TABLE IF NOT EXISTS exports (
		id         UUID PRIMARY KEY,
		session_id UUID NOT NULL,
		style_id   TEXT NOT NULL,
		language   TEXT NOT NULL,
		format     TEXT NOT NULL,
		status     TEXT NOT NULL,
		file_name  TEXT NOT NULL,
		file_size  INTEGER NOT NULL DEFAULT 0,
		error      TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
`

const indexExportsSession = `
	CREATE INDEX IF NOT EXISTS exports_session_id_idx ON exports (session_id, created_at DESC);
`

func execAll(queries ...string) func(ctx context.Context, pool *pgxpool.Pool) error {
	return func(ctx context.Context, pool *pgxpool.Pool) error {
		for _, q := range queries {
			if _, err := pool.Exec(ctx, q); err != nil {
				return err
			}
		}
		return nil
	}
}
