package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app/model"
	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app/repository"
)

func TestSQLiteDB_Interface(t *testing.T) {
	var _ repository.ReportDAO = (*SQLiteDB)(nil)
}

func newTestDB(t *testing.T) *SQLiteDB {
	t.Helper()
	dao, err := NewSQLiteDB(filepath.Join(t.TempDir(), "reports.db"))
	require.NoError(t, err)
	t.Cleanup(func() { dao.Close() })
	return dao
}

func TestSQLiteDB_SaveAndGetAll(t *testing.T) {
	dao := newTestDB(t)
	ctx := context.Background()

	first := &model.ReportRecord{
		ID:               "a1b2c3",
		Timestamp:        time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		ReportKey:        "http://localhost:9000/news/reports/report_x.txt",
		Transcription:    "Mayor announces new park",
		FinalReport:      "A new park was announced today.",
		ImageDescription: "",
		TranscriptionKey: "http://localhost:9000/news/reports/transcription_x.txt",
	}
	require.NoError(t, dao.Save(ctx, first))

	second := &model.ReportRecord{
		ID:          "d4e5f6",
		Timestamp:   time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		ReportKey:   "storage bucket not configured - skipping upload",
		FinalReport: "Follow-up report.",
	}
	require.NoError(t, dao.Save(ctx, second))

	records, err := dao.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Newest first.
	assert.Equal(t, "d4e5f6", records[0].ID)
	assert.Equal(t, "a1b2c3", records[1].ID)
	assert.Equal(t, "Mayor announces new park", records[1].Transcription)
	assert.Equal(t, "storage bucket not configured - skipping upload", records[0].ReportKey)
	assert.Empty(t, records[1].AudioKey)
}

func TestSQLiteDB_ZeroTimestampDefaultsToNow(t *testing.T) {
	dao := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, dao.Save(ctx, &model.ReportRecord{ID: "x", FinalReport: "r"}))

	records, err := dao.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.WithinDuration(t, time.Now().UTC(), records[0].Timestamp, time.Minute)
}

// Reopening an existing database must re-run the additive migration without
// error or data loss.
func TestOpen_AdditiveMigrationIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports.db")

	dao, err := NewSQLiteDB(path)
	require.NoError(t, err)
	require.NoError(t, dao.Save(context.Background(), &model.ReportRecord{ID: "keep", FinalReport: "r"}))
	require.NoError(t, dao.Close())

	reopened, err := NewSQLiteDB(path)
	require.NoError(t, err)
	defer reopened.Close()

	records, err := reopened.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "keep", records[0].ID)
}
