// Package testutil provides testify-based fakes for the pipeline's provider,
// storage, and persistence ports.
package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app/api"
	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app/model"
	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app/storage"
)

// MockTranscriber implements api.Transcriber.
type MockTranscriber struct {
	mock.Mock
}

func NewMockTranscriber() *MockTranscriber { return &MockTranscriber{} }

func (m *MockTranscriber) Transcript(ctx context.Context, inputFilePath string) (string, error) {
	args := m.Called(ctx, inputFilePath)
	return args.String(0), args.Error(1)
}

// MockCaptioner implements api.Captioner.
type MockCaptioner struct {
	mock.Mock
}

func NewMockCaptioner() *MockCaptioner { return &MockCaptioner{} }

func (m *MockCaptioner) Describe(ctx context.Context, imagePath string) (string, error) {
	args := m.Called(ctx, imagePath)
	return args.String(0), args.Error(1)
}

// MockGenerator implements api.Generator and records the messages it was
// called with so tests can assert on prompt construction.
type MockGenerator struct {
	mock.Mock

	Requests [][]api.ChatMessage
}

func NewMockGenerator() *MockGenerator { return &MockGenerator{} }

func (m *MockGenerator) Generate(ctx context.Context, messages []api.ChatMessage) (string, error) {
	m.Requests = append(m.Requests, messages)
	args := m.Called(ctx, messages)
	return args.String(0), args.Error(1)
}

// MockObjectStore implements storage.ObjectStore.
type MockObjectStore struct {
	mock.Mock
}

func NewMockObjectStore() *MockObjectStore { return &MockObjectStore{} }

func (m *MockObjectStore) Upload(ctx context.Context, localPath, key string) storage.UploadResult {
	args := m.Called(ctx, localPath, key)
	return args.Get(0).(storage.UploadResult)
}

// SkippingObjectStore always reports the given skip detail, recording the
// keys it saw. Used to test the partial-save path without mock expectations.
type SkippingObjectStore struct {
	Detail string
	Keys   []string
}

func (s *SkippingObjectStore) Upload(_ context.Context, _, key string) storage.UploadResult {
	s.Keys = append(s.Keys, key)
	return storage.Skipped(s.Detail)
}

// MockReportDAO implements repository.ReportDAO.
type MockReportDAO struct {
	mock.Mock

	// SavedRecords accumulates every record passed to Save.
	SavedRecords []*model.ReportRecord
}

func NewMockReportDAO() *MockReportDAO { return &MockReportDAO{} }

func (m *MockReportDAO) Save(ctx context.Context, record *model.ReportRecord) error {
	m.SavedRecords = append(m.SavedRecords, record)
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockReportDAO) GetAll(ctx context.Context) ([]model.ReportRecord, error) {
	args := m.Called(ctx)
	if records, ok := args.Get(0).([]model.ReportRecord); ok {
		return records, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockReportDAO) Close() error {
	args := m.Called()
	return args.Error(0)
}
