// Package api defines the outbound provider ports used by the report
// pipeline. Implementations live in the provider-specific subpackages and are
// injected at construction time so tests can substitute fakes.
package api

import "context"

// Transcriber converts an audio file to text via a speech-to-text provider.
type Transcriber interface {
	Transcript(ctx context.Context, inputFilePath string) (string, error)
}

// Captioner produces a detailed text description of an image file via a
// vision-capable model.
type Captioner interface {
	Describe(ctx context.Context, imagePath string) (string, error)
}

// Message roles for Generator calls.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// ChatMessage is one role-tagged message sent to the text-generation
// provider.
type ChatMessage struct {
	Role    string
	Content string
}

// Generator produces text from one or more role-tagged messages. Both report
// synthesis and revision go through this port.
type Generator interface {
	Generate(ctx context.Context, messages []ChatMessage) (string, error)
}
