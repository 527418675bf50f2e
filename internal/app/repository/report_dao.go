// Package repository defines the relational persistence port for report
// records, with Postgres and SQLite implementations in subpackages.
package repository

import (
	"context"

	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app/model"
)

// ReportDAO persists and lists report records.
type ReportDAO interface {
	// Save inserts one record. A zero Timestamp defaults to current UTC.
	Save(ctx context.Context, record *model.ReportRecord) error
	// GetAll returns all records, newest first.
	GetAll(ctx context.Context) ([]model.ReportRecord, error)
	Close() error
}
