package textgen

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GeminiGenerator backs the Generator interface with the Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, ErrUnavailable
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, prompt string, opts ...Option) (string, error) {
	if g == nil || g.client == nil {
		return "", ErrUnavailable
	}
	options := NewOptions(opts...)
	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(options.Temperature),
		MaxOutputTokens: int32(options.MaxTokens),
	}
	if options.Instruction != "" {
		config.SystemInstruction = genai.NewContentFromText(options.Instruction, genai.RoleUser)
	}
	response, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("gemini call failed: %w", err)
	}
	text := strings.TrimSpace(response.Text())
	if text == "" {
		return "", fmt.Errorf("empty model response")
	}
	return text, nil
}

var _ Generator = (*GeminiGenerator)(nil)
