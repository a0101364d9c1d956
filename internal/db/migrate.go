package db

import (
	"database/sql"
	"fmt"
	"strings"
)

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

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS priority_weights (
		level  TEXT PRIMARY KEY,
		weight INTEGER NOT NULL
	)`,

	`INSERT OR IGNORE INTO priority_weights (level, weight) VALUES ('High', 10)`,
	`INSERT OR IGNORE INTO priority_weights (level, weight) VALUES ('Medium', 5)`,
	`INSERT OR IGNORE INTO priority_weights (level, weight) VALUES ('Low', 1)`,
}
