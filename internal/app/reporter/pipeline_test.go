package reporter

import (
	"context"
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app/report"
	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app/testutil"
)

func newTestPipeline() (*Pipeline, *testutil.MockTranscriber, *testutil.MockCaptioner, *testutil.MockGenerator) {
	transcriber := testutil.NewMockTranscriber()
	captioner := testutil.NewMockCaptioner()
	generator := testutil.NewMockGenerator()
	return NewPipeline(transcriber, captioner, generator, nil), transcriber, captioner, generator
}

func TestTranscribe_NoAudioMeansNilTextAndNoCall(t *testing.T) {
	pipeline, transcriber, _, _ := newTestPipeline()

	state := pipeline.Transcribe(context.Background(), report.NewState())

	assert.Nil(t, state.TranscribedText)
	transcriber.AssertNotCalled(t, "Transcript")
}

func TestTranscribe_TrimsProviderOutput(t *testing.T) {
	pipeline, transcriber, _, _ := newTestPipeline()
	transcriber.On("Transcript", context.Background(), "/tmp/a.wav").
		Return("  Mayor announces new park \n", nil)

	state := report.NewState()
	state.AudioPath = "/tmp/a.wav"
	state = pipeline.Transcribe(context.Background(), state)

	require.NotNil(t, state.TranscribedText)
	assert.Equal(t, "Mayor announces new park", *state.TranscribedText)
	transcriber.AssertExpectations(t)
}

func TestTranscribe_ProviderErrorCapturedAsData(t *testing.T) {
	pipeline, transcriber, _, _ := newTestPipeline()
	transcriber.On("Transcript", context.Background(), "/tmp/a.wav").
		Return("", errors.New("quota exceeded"))

	state := report.NewState()
	state.AudioPath = "/tmp/a.wav"
	state = pipeline.Transcribe(context.Background(), state)

	require.NotNil(t, state.TranscribedText)
	assert.Equal(t, "Error during transcription: quota exceeded", *state.TranscribedText)
}

func TestDescribeImage_NoImageMeansNilDescriptionAndNoCall(t *testing.T) {
	pipeline, _, captioner, _ := newTestPipeline()

	state := pipeline.DescribeImage(context.Background(), report.NewState())

	assert.Nil(t, state.ImageDescription)
	captioner.AssertNotCalled(t, "Describe")
}

func TestDescribeImage_MissingFileGetsDedicatedMessage(t *testing.T) {
	pipeline, _, captioner, _ := newTestPipeline()
	captioner.On("Describe", context.Background(), "/tmp/missing.jpg").
		Return("", fs.ErrNotExist)

	state := report.NewState()
	state.ImagePath = "/tmp/missing.jpg"
	state = pipeline.DescribeImage(context.Background(), state)

	require.NotNil(t, state.ImageDescription)
	assert.Equal(t, "Error: Image file not found.", *state.ImageDescription)
}

func TestDescribeImage_ProviderErrorCapturedAsData(t *testing.T) {
	pipeline, _, captioner, _ := newTestPipeline()
	captioner.On("Describe", context.Background(), "/tmp/b.jpg").
		Return("", errors.New("model overloaded"))

	state := report.NewState()
	state.ImagePath = "/tmp/b.jpg"
	state = pipeline.DescribeImage(context.Background(), state)

	require.NotNil(t, state.ImageDescription)
	assert.Equal(t, "Error during image description: model overloaded", *state.ImageDescription)
}

func TestDescribeImage_Success(t *testing.T) {
	pipeline, _, captioner, _ := newTestPipeline()
	captioner.On("Describe", context.Background(), "/tmp/b.jpg").
		Return("A crowd gathers in front of city hall.", nil)

	state := report.NewState()
	state.ImagePath = "/tmp/b.jpg"
	state = pipeline.DescribeImage(context.Background(), state)

	require.NotNil(t, state.ImageDescription)
	assert.Equal(t, "A crowd gathers in front of city hall.", *state.ImageDescription)
}
