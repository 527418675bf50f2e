package reporter

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app/api"
	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app/report"
)

func TestGenerateReport_NoInputsSkipsProviderAndUsesPlaceholder(t *testing.T) {
	pipeline, _, _, generator := newTestPipeline()

	state := pipeline.GenerateReport(context.Background(), report.NewState())

	assert.Equal(t, NoInputReport, state.LatestReport())
	generator.AssertNotCalled(t, "Generate")
}

func TestGenerateReport_EmptyDerivedTextsAlsoSkipProvider(t *testing.T) {
	pipeline, _, _, generator := newTestPipeline()

	state := report.NewState()
	state.TranscribedText = report.StringOrNil("")
	state.ImageDescription = report.StringOrNil("")
	state = pipeline.GenerateReport(context.Background(), state)

	assert.Equal(t, NoInputReport, state.LatestReport())
	generator.AssertNotCalled(t, "Generate")
}

func TestGenerateReport_SingleSourcePromptQuotesTranscriptionOnly(t *testing.T) {
	pipeline, _, _, generator := newTestPipeline()
	generator.On("Generate", mock.Anything, mock.Anything).
		Return("A new park was announced today.", nil)

	state := report.NewState()
	state.TranscribedText = report.StringOrNil("Mayor announces new park")
	state = pipeline.GenerateReport(context.Background(), state)

	assert.Equal(t, "A new park was announced today.", state.LatestReport())

	require.Len(t, generator.Requests, 1)
	messages := generator.Requests[0]
	require.Len(t, messages, 1)
	assert.Equal(t, api.RoleSystem, messages[0].Role)
	assert.Contains(t, messages[0].Content, "expert news reporter")
	assert.Contains(t, messages[0].Content, "Transcribed Audio")
	assert.Contains(t, messages[0].Content, "Mayor announces new park")
	assert.NotContains(t, messages[0].Content, "Image Description")
}

func TestGenerateReport_BothSourcesIncluded(t *testing.T) {
	pipeline, _, _, generator := newTestPipeline()
	generator.On("Generate", mock.Anything, mock.Anything).Return("combined report", nil)

	state := report.NewState()
	state.TranscribedText = report.StringOrNil("Mayor announces new park")
	state.ImageDescription = report.StringOrNil("A ribbon-cutting ceremony.")
	state = pipeline.GenerateReport(context.Background(), state)

	require.Len(t, generator.Requests, 1)
	content := generator.Requests[0][0].Content
	assert.Contains(t, content, "Transcribed Audio")
	assert.Contains(t, content, "Image Description")
	assert.Contains(t, content, "synthesize")
}

func TestGenerateReport_ProviderErrorStringifiedIntoDraft(t *testing.T) {
	pipeline, _, _, generator := newTestPipeline()
	generator.On("Generate", mock.Anything, mock.Anything).
		Return("", errors.New("rate limited"))

	state := report.NewState()
	state.TranscribedText = report.StringOrNil("Mayor announces new park")
	state = pipeline.GenerateReport(context.Background(), state)

	assert.Contains(t, state.LatestReport(), "Error during report generation: ")
	assert.True(t, state.HasReport())
}

func TestReviseReport_AppendsExactlyOneDraft(t *testing.T) {
	pipeline, _, _, generator := newTestPipeline()
	generator.On("Generate", mock.Anything, mock.Anything).Return("revised draft", nil)

	state := report.NewState()
	state.TranscribedText = report.StringOrNil("Mayor announces new park")
	state = state.WithGeneratedReport("first draft").
		WithFeedback("add a quote from the mayor")
	historyBefore := len(state.History)

	revised, err := pipeline.ReviseReport(context.Background(), state)
	require.NoError(t, err)

	assert.Equal(t, "revised draft", revised.LatestReport())
	assert.Len(t, revised.History, historyBefore+1)
	assert.Empty(t, revised.PendingFeedback)
	// Prior entries untouched.
	assert.Equal(t, state.History, revised.History[:historyBefore])
}

func TestReviseReport_PromptEmbedsDraftTranscriptionAndFeedback(t *testing.T) {
	pipeline, _, _, generator := newTestPipeline()
	generator.On("Generate", mock.Anything, mock.Anything).Return("revised", nil)

	state := report.NewState()
	state.TranscribedText = report.StringOrNil("Mayor announces new park")
	state = state.WithGeneratedReport("first draft").WithFeedback("shorter please")

	_, err := pipeline.ReviseReport(context.Background(), state)
	require.NoError(t, err)

	require.Len(t, generator.Requests, 1)
	messages := generator.Requests[0]
	require.Len(t, messages, 1)
	assert.Equal(t, api.RoleUser, messages[0].Role)
	assert.Contains(t, messages[0].Content, "first draft")
	assert.Contains(t, messages[0].Content, "Mayor announces new park")
	assert.Contains(t, messages[0].Content, "shorter please")
	assert.Contains(t, messages[0].Content, "Return only the full revised report.")
}

func TestReviseReport_NilTranscriptionUsesNotAvailable(t *testing.T) {
	pipeline, _, _, generator := newTestPipeline()
	generator.On("Generate", mock.Anything, mock.Anything).Return("revised", nil)

	state := report.NewState().WithGeneratedReport("draft").WithFeedback("fix tone")

	_, err := pipeline.ReviseReport(context.Background(), state)
	require.NoError(t, err)

	assert.Contains(t, generator.Requests[0][0].Content, "Not available.")
}

func TestReviseReport_EmptyHistoryFallsBackToSentinelDraft(t *testing.T) {
	pipeline, _, _, generator := newTestPipeline()
	generator.On("Generate", mock.Anything, mock.Anything).Return("revised", nil)

	state := report.NewState().WithFeedback("anything")

	_, err := pipeline.ReviseReport(context.Background(), state)
	require.NoError(t, err)

	assert.Contains(t, generator.Requests[0][0].Content, report.NoReportSentinel)
}

func TestReviseReport_ProviderErrorPropagatesAndHistoryUnchanged(t *testing.T) {
	pipeline, _, _, generator := newTestPipeline()
	generator.On("Generate", mock.Anything, mock.Anything).
		Return("", errors.New("upstream outage"))

	state := report.NewState().
		WithGeneratedReport("only draft").
		WithFeedback("try again")

	result, err := pipeline.ReviseReport(context.Background(), state)

	assert.ErrorContains(t, err, "report revision failed")
	assert.Equal(t, state.History, result.History)
	assert.Equal(t, "only draft", result.LatestReport())
}
