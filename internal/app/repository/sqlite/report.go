package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app/model"
	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app/repository"
)

// SQLiteDB implements repository.ReportDAO on a local SQLite file.
type SQLiteDB struct {
	db *sql.DB
}

var _ repository.ReportDAO = (*SQLiteDB)(nil)

// NewSQLiteDB opens the database at dbPath and prepares the schema.
func NewSQLiteDB(dbPath string) (*SQLiteDB, error) {
	db, err := Open(dbPath)
	if err != nil {
		return nil, err
	}
	return &SQLiteDB{db: db}, nil
}

func (sdb *SQLiteDB) Save(ctx context.Context, record *model.ReportRecord) error {
	timestamp := record.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}

	insertSQL := `
		INSERT INTO reports (
			id, timestamp, audio_key, report_key, transcription, final_report,
			image_description, transcription_key, image_desc_key
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := sdb.db.ExecContext(ctx, insertSQL,
		record.ID, timestamp, record.AudioKey, record.ReportKey,
		record.Transcription, record.FinalReport,
		record.ImageDescription, record.TranscriptionKey, record.ImageDescKey)
	if err != nil {
		return fmt.Errorf("failed to insert report record: %w", err)
	}
	return nil
}

func (sdb *SQLiteDB) GetAll(ctx context.Context) ([]model.ReportRecord, error) {
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

	rows, err := sdb.db.QueryContext(ctx, query)
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

func (sdb *SQLiteDB) Close() error {
	return sdb.db.Close()
}
