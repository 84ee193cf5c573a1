package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/scouterlab/talentscout/textgen"
)

func TestNameExtractorHeuristic(t *testing.T) {
	extractor := NewNameExtractor(nil)
	ctx := context.Background()

	name, ok := extractor.Extract(ctx, "John Doe")
	if !ok || name != "John Doe" {
		t.Errorf("Extract = (%q, %v)", name, ok)
	}

	// Heuristic takes the first two tokens of whatever was said.
	name, ok = extractor.Extract(ctx, "Jane Smith here")
	if !ok || name != "Jane Smith" {
		t.Errorf("Extract = (%q, %v)", name, ok)
	}

	if _, ok := extractor.Extract(ctx, "John"); ok {
		t.Error("single token should not pass")
	}
}

func TestNameExtractorPrefersModel(t *testing.T) {
	gen := textgen.GeneratorFunc(func(ctx context.Context, prompt string, opts ...textgen.Option) (string, error) {
		return "  John Doe  ", nil
	})
	name, ok := NewNameExtractor(gen).Extract(context.Background(), "Hi there, I am John Doe")
	if !ok || name != "John Doe" {
		t.Errorf("Extract = (%q, %v)", name, ok)
	}
}

func TestNameExtractorRejectsNone(t *testing.T) {
	gen := textgen.GeneratorFunc(func(ctx context.Context, prompt string, opts ...textgen.Option) (string, error) {
		return "NONE", nil
	})
	// Model says NONE; the two-token heuristic still applies to the raw input.
	name, ok := NewNameExtractor(gen).Extract(context.Background(), "Mary Major")
	if !ok || name != "Mary Major" {
		t.Errorf("Extract = (%q, %v)", name, ok)
	}
	if _, ok := NewNameExtractor(gen).Extract(context.Background(), "hello"); ok {
		t.Error("NONE plus single token should not pass")
	}
}

func TestNameExtractorFallsBackOnError(t *testing.T) {
	gen := textgen.GeneratorFunc(func(ctx context.Context, prompt string, opts ...textgen.Option) (string, error) {
		return "", errors.New("backend down")
	})
	name, ok := NewNameExtractor(gen).Extract(context.Background(), "John Doe")
	if !ok || name != "John Doe" {
		t.Errorf("Extract = (%q, %v)", name, ok)
	}
}
