package whisper

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// RemoteTranscriber implements transcription against the OpenAI audio API.
type RemoteTranscriber struct {
	client *openai.Client
	model  string
}

// NewRemoteTranscriber creates a RemoteTranscriber using the given client and
// model (e.g. whisper-1).
func NewRemoteTranscriber(client *openai.Client, model string) *RemoteTranscriber {
	return &RemoteTranscriber{client: client, model: model}
}

// Transcript sends the audio file for transcription and returns the plain
// text response.
func (rt *RemoteTranscriber) Transcript(ctx context.Context, inputFilePath string) (string, error) {
	req := openai.AudioRequest{
		Model:    rt.model,
		FilePath: inputFilePath,
		Format:   openai.AudioResponseFormatText,
	}
	resp, err := rt.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", fmt.Errorf("createTranscription failed: %w", err)
	}

	return resp.Text, nil
}
