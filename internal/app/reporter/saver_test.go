package reporter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app/report"
	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app/storage"
	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app/testutil"
	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/config"
)

func newTestSaver(t *testing.T, store storage.ObjectStore, dao *testutil.MockReportDAO) (*Saver, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Settings{SaveDir: dir, StorageKeyPrefix: "reports/"}
	return NewSaver(store, dao, cfg, nil), dir
}

func TestSave_EmptyHistoryReturnsNothingToSave(t *testing.T) {
	store := testutil.NewMockObjectStore()
	dao := testutil.NewMockReportDAO()
	saver, dir := newTestSaver(t, store, dao)

	status := saver.Save(context.Background(), report.NewState())

	assert.False(t, status.Saved)
	assert.Equal(t, NothingToSave, status.String())
	store.AssertNotCalled(t, "Upload")
	dao.AssertNotCalled(t, "Save")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSave_FeedbackOnlyHistoryIsNotSaveable(t *testing.T) {
	store := testutil.NewMockObjectStore()
	dao := testutil.NewMockReportDAO()
	saver, _ := newTestSaver(t, store, dao)

	status := saver.Save(context.Background(), report.NewState().WithFeedback("not a report"))

	assert.False(t, status.Saved)
	dao.AssertNotCalled(t, "Save")
}

func TestSave_SkippingStoreStillWritesFilesAndInsertsRecord(t *testing.T) {
	store := &testutil.SkippingObjectStore{Detail: "storage bucket not configured - skipping upload"}
	dao := testutil.NewMockReportDAO()
	dao.On("Save", mock.Anything, mock.Anything).Return(nil)
	saver, dir := newTestSaver(t, store, dao)

	state := report.NewState()
	state.TranscribedText = report.StringOrNil("Mayor announces new park")
	state = state.WithGeneratedReport("A new park was announced today.")

	status := saver.Save(context.Background(), state)

	assert.True(t, status.Saved)
	assert.Contains(t, status.String(), "storage bucket not configured - skipping upload")
	assert.Contains(t, status.String(), "(Audio not saved by design)")

	reportText, err := os.ReadFile(filepath.Join(dir, "news_report.txt"))
	require.NoError(t, err)
	assert.Equal(t, "A new park was announced today.", string(reportText))

	transText, err := os.ReadFile(filepath.Join(dir, "transcription.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Mayor announces new park", string(transText))

	// No image description was present, so no third file.
	_, err = os.Stat(filepath.Join(dir, "image_description.txt"))
	assert.True(t, os.IsNotExist(err))

	require.Len(t, dao.SavedRecords, 1)
	record := dao.SavedRecords[0]
	assert.Equal(t, status.RecordID, record.ID)
	assert.Empty(t, record.AudioKey)
	assert.Equal(t, "storage bucket not configured - skipping upload", record.ReportKey)
	assert.Equal(t, "storage bucket not configured - skipping upload", record.TranscriptionKey)
	assert.Equal(t, "Mayor announces new park", record.Transcription)
	assert.Equal(t, "A new park was announced today.", record.FinalReport)
	assert.Empty(t, record.ImageDescKey)
}

func TestSave_UploadsEachArtifactUnderDerivedKey(t *testing.T) {
	store := testutil.NewMockObjectStore()
	dao := testutil.NewMockReportDAO()
	dao.On("Save", mock.Anything, mock.Anything).Return(nil)
	saver, _ := newTestSaver(t, store, dao)

	store.On("Upload", mock.Anything, mock.Anything, mock.MatchedBy(func(key string) bool {
		return filepath.Ext(key) == ".txt" && len(key) > len("reports/")
	})).Return(storage.Uploaded("s3://bucket/key")).Times(3)

	state := report.NewState()
	state.TranscribedText = report.StringOrNil("Mayor announces new park")
	state.ImageDescription = report.StringOrNil("A ribbon-cutting ceremony.")
	state = state.WithGeneratedReport("Final report.")

	status := saver.Save(context.Background(), state)

	assert.True(t, status.Saved)
	assert.Contains(t, status.String(), "s3://bucket/key")
	store.AssertExpectations(t)
}

func TestSave_ArtifactKeysUniqueAcrossSaves(t *testing.T) {
	store := &testutil.SkippingObjectStore{Detail: "storage bucket not configured - skipping upload"}
	dao := testutil.NewMockReportDAO()
	dao.On("Save", mock.Anything, mock.Anything).Return(nil)
	saver, _ := newTestSaver(t, store, dao)

	state := report.NewState().WithGeneratedReport("Same content both times.")

	first := saver.Save(context.Background(), state)
	second := saver.Save(context.Background(), state)

	assert.NotEqual(t, first.RecordID, second.RecordID)
	require.Len(t, store.Keys, 2)
	assert.NotEqual(t, store.Keys[0], store.Keys[1])
	for _, key := range store.Keys {
		assert.Contains(t, key, "reports/report_")
	}
}

func TestSave_DatabaseErrorDegradesToStatusLine(t *testing.T) {
	store := &testutil.SkippingObjectStore{Detail: "storage bucket not configured - skipping upload"}
	dao := testutil.NewMockReportDAO()
	dao.On("Save", mock.Anything, mock.Anything).Return(assert.AnError)
	saver, _ := newTestSaver(t, store, dao)

	status := saver.Save(context.Background(), report.NewState().WithGeneratedReport("r"))

	assert.True(t, status.Saved)
	assert.Contains(t, status.String(), "Database error:")
}
