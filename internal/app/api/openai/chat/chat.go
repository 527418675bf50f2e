package chat

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app/api"
)

// Generator implements text generation against the OpenAI chat API.
// Temperature is pinned to zero: deterministic output is favored over
// creativity for news reports.
type Generator struct {
	client *openai.Client
	model  string
}

// NewGenerator creates a Generator using the given client and model.
func NewGenerator(client *openai.Client, model string) *Generator {
	return &Generator{client: client, model: model}
}

// Generate sends the role-tagged messages and returns the assistant text.
func (g *Generator) Generate(ctx context.Context, messages []api.ChatMessage) (string, error) {
	request := openai.ChatCompletionRequest{
		Model:       g.model,
		Messages:    toChatMessages(messages),
		Temperature: 0,
	}

	resp, err := g.client.CreateChatCompletion(ctx, request)
	if err != nil {
		return "", fmt.Errorf("createChatCompletion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

func toChatMessages(messages []api.ChatMessage) []openai.ChatCompletionMessage {
	converted := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		role := openai.ChatMessageRoleUser
		if m.Role == api.RoleSystem {
			role = openai.ChatMessageRoleSystem
		}
		converted = append(converted, openai.ChatCompletionMessage{
			Role:    role,
			Content: m.Content,
		})
	}
	return converted
}
