package dto

import (
	"strings"
	"time"

	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/api/errors"
	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app/model"
)

// GenerateReportResponse is the result of one generation pass. The derived
// texts are null when the corresponding input was not supplied.
type GenerateReportResponse struct {
	Transcription    *string `json:"transcription"`
	ImageDescription *string `json:"image_description"`
	Report           string  `json:"report"`
}

// ReviseReportRequest asks for a new draft from the current one plus
// free-text feedback. Transcription is optional context; when absent the
// editor prompt notes it as unavailable.
type ReviseReportRequest struct {
	Report        string `json:"report" binding:"required"`
	Feedback      string `json:"feedback" binding:"required"`
	Transcription string `json:"transcription,omitempty"`
}

// Validate applies domain rules beyond struct tags.
func (r *ReviseReportRequest) Validate() error {
	if strings.TrimSpace(r.Feedback) == "" {
		return errors.NewValidationError("Validation failed", map[string]string{
			"feedback": "must not be blank",
		})
	}
	return nil
}

// ReviseReportResponse carries the revised draft.
type ReviseReportResponse struct {
	RevisedReport string `json:"revised_report"`
}

// SaveReportRequest persists a report with its derived texts.
type SaveReportRequest struct {
	Report           string `json:"report" binding:"required"`
	Transcription    string `json:"transcription,omitempty"`
	ImageDescription string `json:"image_description,omitempty"`
}

// SaveReportResponse summarizes the save outcome. Status is the multi-line
// human-readable summary; Saved is false when there was nothing to save.
type SaveReportResponse struct {
	Saved    bool   `json:"saved"`
	RecordID string `json:"record_id,omitempty"`
	Status   string `json:"status"`
}

// ReportRecordResponse is one persisted report row.
type ReportRecordResponse struct {
	ID               string    `json:"id"`
	Timestamp        time.Time `json:"timestamp"`
	ReportKey        string    `json:"report_key,omitempty"`
	Transcription    string    `json:"transcription,omitempty"`
	FinalReport      string    `json:"final_report"`
	ImageDescription string    `json:"image_description,omitempty"`
	TranscriptionKey string    `json:"transcription_key,omitempty"`
	ImageDescKey     string    `json:"image_desc_key,omitempty"`
}

// ListReportsResponse wraps the stored reports, newest first.
type ListReportsResponse struct {
	Reports []ReportRecordResponse `json:"reports"`
	Total   int                    `json:"total"`
}

// NewReportRecordResponse maps a stored record to its API shape.
func NewReportRecordResponse(record model.ReportRecord) ReportRecordResponse {
	return ReportRecordResponse{
		ID:               record.ID,
		Timestamp:        record.Timestamp,
		ReportKey:        record.ReportKey,
		Transcription:    record.Transcription,
		FinalReport:      record.FinalReport,
		ImageDescription: record.ImageDescription,
		TranscriptionKey: record.TranscriptionKey,
		ImageDescKey:     record.ImageDescKey,
	}
}
