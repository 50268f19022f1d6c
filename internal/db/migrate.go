package db

import (
	"context"
	"database/sql"
	"fmt"
)

// migration is one schema step. Steps are applied in order, each inside its
// own transaction, and recorded in schema_migrations.
type migration struct {
	version    int
	statements []string
}

var migrations = []migration{
	{version: 1, statements: []string{
		`CREATE TABLE IF NOT EXISTS courses (
			id                    TEXT PRIMARY KEY,
			user_id               TEXT NOT NULL,
			name                  TEXT NOT NULL,
			code                  TEXT NOT NULL DEFAULT '',
			color                 TEXT NOT NULL DEFAULT '',
			target_hours_per_week REAL CHECK(target_hours_per_week IS NULL OR target_hours_per_week >= 0),
			created_at            TEXT NOT NULL,
			updated_at            TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS tasks (
			id              TEXT PRIMARY KEY,
			user_id         TEXT NOT NULL,
			course_id       TEXT NOT NULL REFERENCES courses(id) ON DELETE CASCADE,
			title           TEXT NOT NULL,
			description     TEXT NOT NULL DEFAULT '',
			type            TEXT NOT NULL DEFAULT 'other'
			                CHECK(type IN ('homework','reading','exam','project','other')),
			status          TEXT NOT NULL DEFAULT 'todo'
			                CHECK(status IN ('todo','in_progress','done')),
			priority        TEXT NOT NULL DEFAULT 'normal'
			                CHECK(priority IN ('low','normal','medium','high','urgent')),
			due_date        TEXT,
			estimated_hours REAL CHECK(estimated_hours IS NULL OR estimated_hours >= 0),
			created_at      TEXT NOT NULL,
			updated_at      TEXT NOT NULL,
			completed_at    TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS plans (
			id         TEXT PRIMARY KEY,
			user_id    TEXT NOT NULL,
			title      TEXT NOT NULL,
			plan_json  TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
	}},
	{version: 2, statements: []string{
		`CREATE INDEX IF NOT EXISTS idx_courses_user ON courses(user_id, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_user_status ON tasks(user_id, status)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_course ON tasks(course_id)`,
		`CREATE INDEX IF NOT EXISTS idx_plans_user_created ON plans(user_id, created_at DESC)`,
	}},
}

// Migrate applies every migration newer than the recorded schema version.
// Running it again on an up-to-date database is a no-op.
func Migrate(db *sql.DB) error {
	ctx := context.Background()
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version    INTEGER PRIMARY KEY,
		applied_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ', 'now'))
	)`); err != nil {
		return fmt.Errorf("creating schema_migrations: %w", err)
	}

	current, err := SchemaVersion(ctx, db)
	if err != nil {
		return err
	}

	uow := NewSQLiteUnitOfWork(db)
	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		err := uow.WithinTx(ctx, func(ctx context.Context, tx DBTX) error {
			for i, stmt := range m.statements {
				if _, err := tx.ExecContext(ctx, stmt); err != nil {
					return fmt.Errorf("statement %d: %w", i, err)
				}
			}
			_, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES (?)`, m.version)
			return err
		})
		if err != nil {
			return fmt.Errorf("migration %d: %w", m.version, err)
		}
	}
	return nil
}

// SchemaVersion returns the highest applied migration version, or 0.
func SchemaVersion(ctx context.Context, db DBTX) (int, error) {
	var v sql.NullInt64
	if err := db.QueryRowContext(ctx, `SELECT MAX(version) FROM schema_migrations`).Scan(&v); err != nil {
		return 0, fmt.Errorf("reading schema version: %w", err)
	}
	return int(v.Int64), nil
}
