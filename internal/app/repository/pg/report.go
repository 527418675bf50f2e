package pg

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app/model"
	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app/repository"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS reports (
		id VARCHAR PRIMARY KEY,
		timestamp TIMESTAMP DEFAULT NOW(),
		audio_key VARCHAR,
		report_key VARCHAR,
		transcription TEXT,
		final_report TEXT
	)`,
	// Additive migration for columns introduced after the initial schema.
	`ALTER TABLE reports ADD COLUMN IF NOT EXISTS image_description TEXT`,
	`ALTER TABLE reports ADD COLUMN IF NOT EXISTS transcription_key VARCHAR`,
	`ALTER TABLE reports ADD COLUMN IF NOT EXISTS image_desc_key VARCHAR`,
}

// PostgresDB implements repository.ReportDAO on a Postgres server.
type PostgresDB struct {
	db *sql.DB
}

var _ repository.ReportDAO = (*PostgresDB)(nil)

// NewPostgresDB connects using the given connection string (the canonical
// postgresql:// scheme) and ensures the reports schema exists.
func NewPostgresDB(connectionString string) (*PostgresDB, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pdb := &PostgresDB{db: db}
	if err := pdb.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return pdb, nil
}

func (pdb *PostgresDB) ensureSchema() error {
	for _, stmt := range schemaStatements {
		if _, err := pdb.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to ensure reports schema: %w", err)
		}
	}
	return nil
}

func (pdb *PostgresDB) Save(ctx context.Context, record *model.ReportRecord) error {
	timestamp := record.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}

	insertSQL := `
		INSERT INTO reports (
			id, timestamp, audio_key, report_key, transcription, final_report,
			image_description, transcription_key, image_desc_key
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := pdb.db.ExecContext(ctx, insertSQL,
		record.ID, timestamp, record.AudioKey, record.ReportKey,
		record.Transcription, record.FinalReport,
		record.ImageDescription, record.TranscriptionKey, record.ImageDescKey)
	if err != nil {
		return fmt.Errorf("failed to insert report record: %w", err)
	}
	return nil
}

func (pdb *PostgresDB) GetAll(ctx context.Context) ([]model.ReportRecord, error) {
	query := `
		SELECT id, timestamp,
			COALESCE(audio_key, '') AS audio_key,
			COALESCE(report_key, '') AS report_key,
			COALESCE(transcription, '') AS transcription,
			COALESCE(final_report, '') AS final_report,
			COALESCE(image_description, '') AS image_description,
			COALESCE(transcription_key, '') AS transcription_key,
			COALESCE(image_desc_key, '') AS image_desc_key
		FROM reports
		ORDER BY timestamp DESC`

	rows, err := pdb.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var records []model.ReportRecord
	for rows.Next() {
		var r model.ReportRecord
		err = rows.Scan(&r.ID, &r.Timestamp, &r.AudioKey, &r.ReportKey,
			&r.Transcription, &r.FinalReport,
			&r.ImageDescription, &r.TranscriptionKey, &r.ImageDescKey)
		if err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		records = append(records, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return records, nil
}

func (pdb *PostgresDB) Close() error {
	return pdb.db.Close()
}
