package dialogue

import (
	"context"
	"fmt"
	"strings"

	"github.com/scouterlab/talentscout/textgen"
	"github.com/scouterlab/talentscout/types"
)

const (
	classifySentimentInstruction = `Analyze the sentiment of this response. Return one word: POSITIVE, NEUTRAL, or NEGATIVE.`

	detectLanguageInstruction = `Identify the language of the user's message. Return only the two-letter ISO 639-1 code, e.g. en, es, fr.`

	rewriteToneInstruction = `Rewrite the assistant message below in a more %s tone. Keep the meaning, the question being asked and any question numbering intact. Return only the rewritten message.`

	translateInstruction = `Translate the assistant message below into the language with ISO 639-1 code %q. Return only the translation.`
)

// Enricher performs best-effort rewrites and classifications around an already
// computed base message. Every method returns an error instead of a degraded
// result; callers keep the base message on failure.
type Enricher struct {
	gen textgen.Generator
}

func NewEnricher(gen textgen.Generator) *Enricher {
	return &Enricher{gen: gen}
}

func (e *Enricher) ClassifySentiment(ctx context.Context, input string) (types.Sentiment, error) {
	if e == nil || e.gen == nil {
		return "", textgen.ErrUnavailable
	}
	response, err := e.gen.Generate(ctx, fmt.Sprintf("Response: %q", input),
		textgen.WithInstruction(classifySentimentInstruction),
		textgen.WithTemperature(0.1),
	)
	if err != nil {
		return "", fmt.Errorf("classify sentiment: %w", err)
	}
	label := strings.ToUpper(strings.TrimSpace(response))
	switch {
	case strings.Contains(label, string(types.SentimentPositive)):
		return types.SentimentPositive, nil
	case strings.Contains(label, string(types.SentimentNegative)):
		return types.SentimentNegative, nil
	case strings.Contains(label, string(types.SentimentNeutral)):
		return types.SentimentNeutral, nil
	}
	return "", fmt.Errorf("unrecognized sentiment label %q", label)
}

func (e *Enricher) DetectLanguage(ctx context.Context, input string) (string, error) {
	if e == nil || e.gen == nil {
		return "", textgen.ErrUnavailable
	}
	response, err := e.gen.Generate(ctx, fmt.Sprintf("Message: %q", input),
		textgen.WithInstruction(detectLanguageInstruction),
		textgen.WithTemperature(0.1),
	)
	if err != nil {
		return "", fmt.Errorf("detect language: %w", err)
	}
	code := strings.ToLower(strings.TrimSpace(response))
	if len(code) != 2 || strings.IndexFunc(code, func(r rune) bool { return r < 'a' || r > 'z' }) >= 0 {
		return "", fmt.Errorf("unrecognized language code %q", response)
	}
	return code, nil
}

// RewriteTone adjusts the phrasing of message for the given sentiment:
// encouraging after a negative turn, enthusiastic after a positive one.
// Neutral sentiment returns the message unchanged.
func (e *Enricher) RewriteTone(ctx context.Context, message string, sentiment types.Sentiment) (string, error) {
	var tone string
	switch sentiment {
	case types.SentimentNegative:
		tone = "encouraging and reassuring"
	case types.SentimentPositive:
		tone = "enthusiastic"
	default:
		return message, nil
	}
	if e == nil || e.gen == nil {
		return "", textgen.ErrUnavailable
	}
	rewritten, err := e.gen.Generate(ctx, message,
		textgen.WithInstruction(fmt.Sprintf(rewriteToneInstruction, tone)),
		textgen.WithTemperature(0.5),
	)
	if err != nil {
		return "", fmt.Errorf("rewrite tone: %w", err)
	}
	return rewritten, nil
}

// Translate renders message in the detected language. English and empty codes
// pass the message through unchanged.
func (e *Enricher) Translate(ctx context.Context, message, lang string) (string, error) {
	if lang == "" || lang == "en" {
		return message, nil
	}
	if e == nil || e.gen == nil {
		return "", textgen.ErrUnavailable
	}
	translated, err := e.gen.Generate(ctx, message,
		textgen.WithInstruction(fmt.Sprintf(translateInstruction, lang)),
		textgen.WithTemperature(0.3),
	)
	if err != nil {
		return "", fmt.Errorf("translate: %w", err)
	}
	return translated, nil
}
