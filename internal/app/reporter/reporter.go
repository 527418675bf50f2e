package reporter

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app/api"
	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app/report"
)

// NoInputReport is the literal report content used when neither a
// transcription nor an image description is available; no provider call is
// made in that case.
const NoInputReport = "No input provided. Upload an audio file and/or image."

const reporterPreamble = "You are an expert news reporter. Write a clear, concise, factual report based on the inputs."

const revisionTemplate = `You are a professional news editor. Revise the report per feedback. Keep facts faithful to the transcription.

**Original Transcription:**
%q

**Current Draft:**
%q

**Feedback:**
%q

Return only the full revised report.`

// GenerateReport synthesizes a report from the derived texts and appends it
// to the history. A provider failure is stringified into the appended entry;
// this stage never fails the pipeline (same policy as the derivation stages).
func (p *Pipeline) GenerateReport(ctx context.Context, state report.State) report.State {
	transcribed := report.Deref(state.TranscribedText, "")
	described := report.Deref(state.ImageDescription, "")

	if transcribed == "" && described == "" {
		return state.WithGeneratedReport(NoInputReport)
	}

	instruction := []string{reporterPreamble}
	if transcribed != "" {
		instruction = append(instruction, fmt.Sprintf("--- Transcribed Audio ---\n%q", transcribed))
	}
	if described != "" {
		instruction = append(instruction, fmt.Sprintf("--- Image Description ---\n%q", described))
	}
	instruction = append(instruction, "Present the information as a professional news report. If both are present, synthesize them.")

	content, err := p.generator.Generate(ctx, []api.ChatMessage{
		{Role: api.RoleSystem, Content: strings.Join(instruction, "\n\n")},
	})
	if err != nil {
		p.logger.Warn("report generation failed", zap.Error(err))
		content = fmt.Sprintf("Error during report generation: %v", err)
	}

	return state.WithGeneratedReport(content)
}

// ReviseReport produces a new draft from the latest report, the original
// transcription, and the pending feedback, and appends it to the history.
// Unlike generation there is no safe stringified fallback here: appending an
// error as a draft would shadow the latest good report for every later
// revision and save, so a provider failure propagates and the history is left
// unchanged.
func (p *Pipeline) ReviseReport(ctx context.Context, state report.State) (report.State, error) {
	transcribed := report.Deref(state.TranscribedText, "Not available.")
	draft := state.LatestReport()

	prompt := fmt.Sprintf(revisionTemplate, transcribed, draft, state.PendingFeedback)
	revised, err := p.generator.Generate(ctx, []api.ChatMessage{
		{Role: api.RoleUser, Content: prompt},
	})
	if err != nil {
		return state, fmt.Errorf("report revision failed: %w", err)
	}

	next := state.WithGeneratedReport(revised)
	next.PendingFeedback = ""
	return next, nil
}
