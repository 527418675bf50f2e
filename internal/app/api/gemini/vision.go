package gemini

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/genai"
)

const captionInstruction = "Describe the image in detail"

// Captioner implements image captioning with a Google Gemini multimodal
// model. Selected via providers.yaml when a Gemini key is configured.
type Captioner struct {
	client *genai.Client
	model  string
}

// NewCaptioner creates a Gemini-backed Captioner.
func NewCaptioner(ctx context.Context, apiKey, model string) (*Captioner, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Captioner{client: client, model: model}, nil
}

// Describe reads the image file and asks the model for a detailed
// description.
func (c *Captioner) Describe(ctx context.Context, imagePath string) (string, error) {
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(captionInstruction),
			genai.NewPartFromBytes(data, "image/jpeg"),
		}, genai.RoleUser),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("generateContent failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("vision response contained no text")
	}
	return text, nil
}
