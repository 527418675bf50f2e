package vision

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/sashabaranov/go-openai"
)

const captionInstruction = "Describe the image in detail"

// Captioner implements image captioning with an OpenAI multimodal chat model.
// The image is inlined as a base64 data URI next to a fixed instruction.
type Captioner struct {
	client *openai.Client
	model  string
}

// NewCaptioner creates a Captioner using the given client and model.
func NewCaptioner(client *openai.Client, model string) *Captioner {
	return &Captioner{client: client, model: model}
}

// Describe reads the image file and asks the model for a detailed
// description.
func (c *Captioner) Describe(ctx context.Context, imagePath string) (string, error) {
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}

	dataURI := fmt.Sprintf("data:image/jpeg;base64,%s", base64.StdEncoding.EncodeToString(data))
	request := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: captionInstruction},
					{
						Type:     openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{URL: dataURI},
					},
				},
			},
		},
		Temperature: 0,
	}

	resp, err := c.client.CreateChatCompletion(ctx, request)
	if err != nil {
		return "", fmt.Errorf("createChatCompletion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("vision completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
