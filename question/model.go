package question

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/scouterlab/talentscout/textgen"
)

const generateQuestionsInstruction = `You are an expert technical interviewer. Generate %d relevant, practical questions based on the candidate's tech stack. Return only the questions, numbered 1-%d, one per line.`

// ModelGenerator asks the text-generation service for questions and parses the
// response as a list.
type ModelGenerator struct {
	gen         textgen.Generator
	temperature float32
}

func NewModelGenerator(gen textgen.Generator) *ModelGenerator {
	return &ModelGenerator{gen: gen, temperature: 0.7}
}

func (g *ModelGenerator) GenerateQuestions(ctx context.Context, req *Request) ([]string, error) {
	if g == nil || g.gen == nil {
		return nil, textgen.ErrUnavailable
	}
	count := req.Count
	if count <= 0 || count > MaxQuestions {
		count = MaxQuestions
	}
	prompt := fmt.Sprintf("Tech Stack: %s\nExperience: %s years",
		req.TechStack, strconv.FormatFloat(req.YearsExperience, 'f', -1, 64))
	response, err := g.gen.Generate(ctx, prompt,
		textgen.WithInstruction(fmt.Sprintf(generateQuestionsInstruction, count, count)),
		textgen.WithTemperature(g.temperature),
	)
	if err != nil {
		return nil, fmt.Errorf("generate questions: %w", err)
	}
	questions := ParseList(response)
	if len(questions) == 0 {
		return nil, fmt.Errorf("no parsable questions in model response")
	}
	if len(questions) > count {
		questions = questions[:count]
	}
	return questions, nil
}

var listMarker = regexp.MustCompile(`^\s*(?:\d+[.):]?\s*|[-•]\s*)`)

// ParseList extracts list items from generated text: non-empty lines with a
// leading number, dash or bullet, marker stripped.
func ParseList(text string) []string {
	var items []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		marker := listMarker.FindString(line)
		if marker == "" {
			continue
		}
		item := strings.TrimSpace(line[len(marker):])
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

var _ Generator = (*ModelGenerator)(nil)
