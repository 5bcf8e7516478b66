package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent and re-run on
// every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS species (
		id                     TEXT PRIMARY KEY,
		name                   TEXT NOT NULL UNIQUE COLLATE NOCASE,
		scientific_name        TEXT,
		watering_interval_days INTEGER NOT NULL CHECK(watering_interval_days > 0)
	)`,

	`CREATE TABLE IF NOT EXISTS plants (
		id                     TEXT PRIMARY KEY,
		user_id                TEXT NOT NULL,
		plant_name             TEXT NOT NULL,
		scientific_name        TEXT,
		custom_name            TEXT,
		watering_interval_days INTEGER NOT NULL CHECK(watering_interval_days > 0),
		last_watered           TEXT NOT NULL,
		next_water_date        TEXT NOT NULL,
		photo_url              TEXT,
		status                 TEXT NOT NULL DEFAULT 'active'
		                       CHECK(status IN ('active','archived')),
		created_at             TEXT NOT NULL,
		updated_at             TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_plants_user ON plants(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_plants_user_next ON plants(user_id, next_water_date)`,

	`ALTER TABLE plants ADD COLUMN last_watered_timestamp TEXT`,

	`CREATE TABLE IF NOT EXISTS watering_logs (
		id           TEXT PRIMARY KEY,
		plant_id     TEXT NOT NULL REFERENCES plants(id) ON DELETE CASCADE,
		watered_date TEXT NOT NULL,
		notes        TEXT NOT NULL DEFAULT '',
		created_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_watering_logs_plant ON watering_logs(plant_id)`,
}
