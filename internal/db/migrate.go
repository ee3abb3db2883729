package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations are applied in order on every open. Statements must be
// idempotent: CREATE TABLE IF NOT EXISTS, or ALTER TABLE whose duplicate
// column errors are tolerated below.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS study_tasks (
		id        TEXT PRIMARY KEY,
		subject   TEXT NOT NULL,
		time      TEXT NOT NULL,
		completed INTEGER NOT NULL DEFAULT 0,
		position  INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_study_tasks_position ON study_tasks(position)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
