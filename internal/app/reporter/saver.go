package reporter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app/model"
	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app/report"
	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app/repository"
	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app/storage"
	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/config"
)

// NothingToSave is the status returned when the history holds no generated
// report.
const NothingToSave = "No report available to save."

// SaveStatus summarizes one save operation. No step in the save pipeline
// throws past the Saver; every failure mode degrades to a status line.
type SaveStatus struct {
	Saved    bool
	RecordID string
	Lines    []string
}

func (s SaveStatus) String() string {
	return strings.Join(s.Lines, "\n")
}

// Saver exports the final report to local files, object storage, and the
// relational store.
type Saver struct {
	store     storage.ObjectStore
	dao       repository.ReportDAO
	outDir    string
	keyPrefix string
	logger    *zap.Logger
}

// NewSaver wires the saver from its ports and settings.
func NewSaver(store storage.ObjectStore, dao repository.ReportDAO, cfg *config.Settings, logger *zap.Logger) *Saver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Saver{
		store:     store,
		dao:       dao,
		outDir:    cfg.SaveDir,
		keyPrefix: cfg.StorageKeyPrefix,
		logger:    logger,
	}
}

// Save persists the latest report. With no generated report in the history it
// returns a nothing-to-save status and performs zero writes, uploads, or
// inserts.
func (s *Saver) Save(ctx context.Context, state report.State) SaveStatus {
	if !state.HasReport() {
		return SaveStatus{Saved: false, Lines: []string{NothingToSave}}
	}

	finalText := state.LatestReport()
	transcribed := report.Deref(state.TranscribedText, "")
	imageDesc := report.Deref(state.ImageDescription, "")

	uid := strings.ReplaceAll(uuid.NewString(), "-", "")
	timestamp := time.Now().UTC()
	stamp := timestamp.Format("20060102_150405")

	var lines []string

	reportPath, line := s.writeArtifact("news_report.txt", finalText)
	if line != "" {
		lines = append(lines, line)
	}

	var transPath, imgDescPath string
	if transcribed != "" {
		transPath, line = s.writeArtifact("transcription.txt", transcribed)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if imageDesc != "" {
		imgDescPath, line = s.writeArtifact("image_description.txt", imageDesc)
		if line != "" {
			lines = append(lines, line)
		}
	}

	reportResult := s.upload(ctx, reportPath, s.artifactKey("report", stamp, uid))

	var transResult, imgDescResult storage.UploadResult
	if transPath != "" {
		transResult = s.upload(ctx, transPath, s.artifactKey("transcription", stamp, uid))
	}
	if imgDescPath != "" {
		imgDescResult = s.upload(ctx, imgDescPath, s.artifactKey("image_description", stamp, uid))
	}

	record := &model.ReportRecord{
		ID:        uid,
		Timestamp: timestamp,
		// Audio is not saved by design.
		AudioKey:         "",
		ReportKey:        reportResult.String(),
		Transcription:    transcribed,
		FinalReport:      finalText,
		ImageDescription: imageDesc,
		TranscriptionKey: transResult.String(),
		ImageDescKey:     imgDescResult.String(),
	}

	dbLine := fmt.Sprintf("   Database record: %s", uid)
	if err := s.dao.Save(ctx, record); err != nil {
		s.logger.Warn("failed to persist report record", zap.Error(err))
		dbLine = fmt.Sprintf("   Database error: %v", err)
	}

	status := []string{fmt.Sprintf("✅ Saved local report: %s", reportPath)}
	status = append(status, fmt.Sprintf("   Report storage: %s", reportResult))
	if transPath != "" {
		status = append(status, fmt.Sprintf("   Transcription storage: %s", transResult))
	}
	if imgDescPath != "" {
		status = append(status, fmt.Sprintf("   Image description storage: %s", imgDescResult))
	}
	status = append(status, dbLine)
	status = append(status, "   (Audio not saved by design)")
	status = append(status, lines...)

	return SaveStatus{Saved: true, RecordID: uid, Lines: status}
}

// artifactKey derives the storage key for one artifact from the configured
// prefix, the artifact label, the timestamp, and the save identifier. Keys
// are unique across saves.
func (s *Saver) artifactKey(label, stamp, uid string) string {
	return fmt.Sprintf("%s%s_%s_%s.txt", s.keyPrefix, label, stamp, uid)
}

func (s *Saver) writeArtifact(name, content string) (path string, problem string) {
	if err := os.MkdirAll(s.outDir, 0755); err != nil {
		return "", fmt.Sprintf("   Failed to create %s: %v", s.outDir, err)
	}
	path = filepath.Join(s.outDir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Sprintf("   Failed to write %s: %v", path, err)
	}
	return path, ""
}

func (s *Saver) upload(ctx context.Context, localPath, key string) storage.UploadResult {
	if localPath == "" {
		return storage.Skipped("local file missing - skipping upload")
	}
	return s.store.Upload(ctx, localPath, key)
}
