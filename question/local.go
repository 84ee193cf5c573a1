package question

import (
	"context"
	"errors"
	"fmt"
)

// FallbackQuestions returns the fixed generic list used when AI generation is
// unavailable or yields nothing usable.
func FallbackQuestions() []string {
	return []string{
		"Describe a challenging project you've worked on.",
		"How do you approach debugging?",
		"How do you stay updated with new technologies?",
	}
}

// StaticGenerator serves a fixed question list regardless of tech stack.
type StaticGenerator struct {
	Questions []string
}

func NewStaticGenerator(questions ...string) *StaticGenerator {
	if len(questions) == 0 {
		questions = FallbackQuestions()
	}
	return &StaticGenerator{Questions: questions}
}

func (g *StaticGenerator) GenerateQuestions(ctx context.Context, req *Request) ([]string, error) {
	count := req.Count
	if count <= 0 || count > MaxQuestions {
		count = MaxQuestions
	}
	out := make([]string, 0, len(g.Questions))
	out = append(out, g.Questions...)
	if len(out) > count {
		out = out[:count]
	}
	return out, nil
}

// FailbackGenerator tries generators in order until one returns a non-empty
// list.
type FailbackGenerator struct {
	generators []Generator
}

func NewFailbackGenerator(generators ...Generator) *FailbackGenerator {
	return &FailbackGenerator{generators: generators}
}

func (g *FailbackGenerator) GenerateQuestions(ctx context.Context, req *Request) ([]string, error) {
	var lastErr error
	for _, generator := range g.generators {
		questions, err := generator.GenerateQuestions(ctx, req)
		if err == nil && len(questions) > 0 {
			return questions, nil
		}
		if err != nil {
			lastErr = err
		}
	}
	if lastErr == nil {
		lastErr = errors.New("no questions produced")
	}
	return nil, fmt.Errorf("all question generators failed: %w", lastErr)
}

var (
	_ Generator = (*StaticGenerator)(nil)
	_ Generator = (*FailbackGenerator)(nil)
)
