package textgen

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// EinoGenerator backs the Generator interface with any eino chat model, e.g.
// the eino-ext OpenAI binding.
type EinoGenerator struct {
	chatModel model.BaseChatModel
}

func NewEinoGenerator(chatModel model.BaseChatModel) *EinoGenerator {
	return &EinoGenerator{chatModel: chatModel}
}

func (g *EinoGenerator) Generate(ctx context.Context, prompt string, opts ...Option) (string, error) {
	if g == nil || g.chatModel == nil {
		return "", ErrUnavailable
	}
	options := NewOptions(opts...)
	messages := make([]*schema.Message, 0, 2)
	if options.Instruction != "" {
		messages = append(messages, schema.SystemMessage(options.Instruction))
	}
	messages = append(messages, schema.UserMessage(prompt))

	callOptions := []model.Option{
		model.WithTemperature(options.Temperature),
	}
	if options.MaxTokens > 0 {
		callOptions = append(callOptions, model.WithMaxTokens(options.MaxTokens))
	}
	response, err := g.chatModel.Generate(ctx, messages, callOptions...)
	if err != nil {
		return "", fmt.Errorf("LLM call failed: %w", err)
	}
	text := strings.TrimSpace(response.Content)
	if text == "" {
		return "", fmt.Errorf("empty model response")
	}
	return text, nil
}

var _ Generator = (*EinoGenerator)(nil)
