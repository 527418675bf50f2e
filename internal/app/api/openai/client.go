package openai

import (
	"github.com/sashabaranov/go-openai"
)

// NewClient builds the shared OpenAI API client. The key is injected from
// configuration; adapters receive the client rather than reading the
// environment themselves.
func NewClient(apiKey string) *openai.Client {
	return openai.NewClient(apiKey)
}
