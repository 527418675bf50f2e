package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS reports (
	id TEXT PRIMARY KEY,
	timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
	audio_key TEXT,
	report_key TEXT,
	transcription TEXT,
	final_report TEXT
)`

// Columns added after the initial schema. Applied additively on startup so an
// existing database upgrades without data loss.
var additiveColumns = []string{
	"ALTER TABLE reports ADD COLUMN image_description TEXT",
	"ALTER TABLE reports ADD COLUMN transcription_key TEXT",
	"ALTER TABLE reports ADD COLUMN image_desc_key TEXT",
}

// Open opens (creating if needed) the SQLite database at dbPath and ensures
// the reports schema exists, including later additive columns.
func Open(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?cache=shared&mode=rwc", dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create reports table: %w", err)
	}

	// SQLite has no ADD COLUMN IF NOT EXISTS; a duplicate-column error means
	// the migration already ran.
	for _, ddl := range additiveColumns {
		if _, err := db.Exec(ddl); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			db.Close()
			return nil, fmt.Errorf("failed to migrate reports table: %w", err)
		}
	}

	return db, nil
}
