// Package services adapts the application core to the API surface.
package services

import (
	"context"

	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app/model"
	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app/report"
	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app/reporter"
)

// ReportService drives the report pipeline for the HTTP handlers.
type ReportService interface {
	// Generate runs the full derivation and synthesis pass over the uploaded
	// files. Missing inputs and provider failures surface as data in the
	// returned state, never as an error.
	Generate(ctx context.Context, audioPath, imagePath string) report.State

	// Revise produces a new draft from the current one and the feedback. A
	// provider failure is returned as an error so the caller keeps its draft.
	Revise(ctx context.Context, currentReport, feedback, transcription string) (string, error)

	// Save persists the report to local files, object storage, and the
	// database, degrading each failing step to a status line.
	Save(ctx context.Context, finalReport, transcription, imageDescription string) reporter.SaveStatus

	// List returns the stored reports, newest first.
	List(ctx context.Context) ([]model.ReportRecord, error)
}

type reportService struct {
	app *reporter.Application
}

// NewReportService wraps the assembled application.
func NewReportService(app *reporter.Application) ReportService {
	return &reportService{app: app}
}

func (s *reportService) Generate(ctx context.Context, audioPath, imagePath string) report.State {
	state := report.NewState()
	state.AudioPath = audioPath
	state.ImagePath = imagePath

	state = s.app.Pipeline.Transcribe(ctx, state)
	state = s.app.Pipeline.DescribeImage(ctx, state)
	return s.app.Pipeline.GenerateReport(ctx, state)
}

func (s *reportService) Revise(ctx context.Context, currentReport, feedback, transcription string) (string, error) {
	state := report.NewState()
	if transcription != "" {
		state.TranscribedText = report.StringOrNil(transcription)
	}
	state = state.WithGeneratedReport(currentReport).WithFeedback(feedback)

	revised, err := s.app.Pipeline.ReviseReport(ctx, state)
	if err != nil {
		return "", err
	}
	return revised.LatestReport(), nil
}

func (s *reportService) Save(ctx context.Context, finalReport, transcription, imageDescription string) reporter.SaveStatus {
	state := report.NewState()
	if transcription != "" {
		state.TranscribedText = report.StringOrNil(transcription)
	}
	if imageDescription != "" {
		state.ImageDescription = report.StringOrNil(imageDescription)
	}
	if finalReport != "" {
		state = state.WithGeneratedReport(finalReport)
	}

	return s.app.Saver.Save(ctx, state)
}

func (s *reportService) List(ctx context.Context) ([]model.ReportRecord, error) {
	return s.app.Reports.GetAll(ctx)
}
