// Package reporter implements the report pipeline: transcription, image
// captioning, report synthesis, revision, and persistence. Stages take a
// report.State by value and return the successor state; provider failures in
// the derivation stages are captured as data so the pipeline always yields a
// usable result.
package reporter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"go.uber.org/zap"

	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app/api"
	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app/report"
)

// Pipeline bundles the provider adapters behind the generation stages.
type Pipeline struct {
	transcriber api.Transcriber
	captioner   api.Captioner
	generator   api.Generator
	logger      *zap.Logger
}

// NewPipeline wires the pipeline from its provider ports.
func NewPipeline(transcriber api.Transcriber, captioner api.Captioner, generator api.Generator, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		transcriber: transcriber,
		captioner:   captioner,
		generator:   generator,
		logger:      logger,
	}
}

// Transcribe derives TranscribedText from the audio payload. No audio means
// TranscribedText stays nil and no outbound call is made. Provider and I/O
// failures are stored as a descriptive string, not returned.
func (p *Pipeline) Transcribe(ctx context.Context, state report.State) report.State {
	if state.AudioPath == "" {
		state.TranscribedText = nil
		return state
	}

	text, err := p.transcriber.Transcript(ctx, state.AudioPath)
	if err != nil {
		p.logger.Warn("transcription failed", zap.Error(err))
		state.TranscribedText = report.StringOrNil(fmt.Sprintf("Error during transcription: %v", err))
		return state
	}

	state.TranscribedText = report.StringOrNil(strings.TrimSpace(text))
	return state
}

// DescribeImage derives ImageDescription from the image payload, symmetric to
// Transcribe.
func (p *Pipeline) DescribeImage(ctx context.Context, state report.State) report.State {
	if state.ImagePath == "" {
		state.ImageDescription = nil
		return state
	}

	description, err := p.captioner.Describe(ctx, state.ImagePath)
	if err != nil {
		p.logger.Warn("image description failed", zap.Error(err))
		if errors.Is(err, fs.ErrNotExist) {
			state.ImageDescription = report.StringOrNil("Error: Image file not found.")
		} else {
			state.ImageDescription = report.StringOrNil(fmt.Sprintf("Error during image description: %v", err))
		}
		return state
	}

	state.ImageDescription = report.StringOrNil(description)
	return state
}
