package database

import (
	"database/sql"
	"fmt"
	"log"
)

// Migration is one versioned schema step. SQL is embedded so the binary is
// self-contained; no migrations directory to ship.
type Migration struct {
	Version int
	Name    string
	SQL     string
}

var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_workouts",
		SQL: `
			CREATE TABLE IF NOT EXISTS workouts (
				id TEXT PRIMARY KEY,
				filename TEXT NOT NULL,
				workout_id TEXT NOT NULL,
				sport TEXT NOT NULL,
				start_time INTEGER NOT NULL,
				finish_time INTEGER NOT NULL,
				total_seconds REAL NOT NULL,
				distance_meters REAL NOT NULL,
				calories INTEGER NOT NULL,
				lap_count INTEGER NOT NULL,
				raw BLOB NOT NULL,
				created_at INTEGER NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_workouts_sport ON workouts(sport);
			CREATE INDEX IF NOT EXISTS idx_workouts_start_time ON workouts(start_time);
		`,
	},
	{
		Version: 2,
		Name:    "create_operations",
		SQL: `
			CREATE TABLE IF NOT EXISTS operations (
				id TEXT PRIMARY KEY,
				kind TEXT NOT NULL,
				input_ids TEXT NOT NULL,
				output_id TEXT NOT NULL,
				detail TEXT,
				created_at INTEGER NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_operations_output ON operations(output_id);
		`,
	},
}

// Migrate applies every pending migration in version order.
func Migrate(db *sql.DB) error {
	if err := initMigrationsTable(db); err != nil {
		return err
	}

	applied, err := appliedMigrations(db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}
		if err := applyMigration(db, m); err != nil {
			return err
		}
	}

	return nil
}

func initMigrationsTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

func appliedMigrations(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}

	return applied, rows.Err()
}

func applyMigration(db *sql.DB, m Migration) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.Exec(m.SQL); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to execute migration %d: %w", m.Version, err)
	}

	if _, err := tx.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)", m.Version, m.Name); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
	}

	log.Printf("Applied migration %d: %s", m.Version, m.Name)
	return nil
}
