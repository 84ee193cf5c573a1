package command

import (
	"context"
	"strings"
	"unicode"
)

// LocalParser detects the End command with a fixed keyword list. Matching is
// case-insensitive on whole words, so "I'm done" ends the conversation while
// "Backend Engineer" does not, and takes priority over stage handling.
type LocalParser struct {
	endKeywords map[string]struct{}
}

func NewLocalParser() *LocalParser {
	keywords := []string{
		"bye", "goodbye", "exit", "quit", "end", "stop", "finish",
		"done", "cancel", "terminate", "close", "leave",
	}
	set := make(map[string]struct{}, len(keywords))
	for _, keyword := range keywords {
		set[keyword] = struct{}{}
	}
	return &LocalParser{endKeywords: set}
}

func (p *LocalParser) ParseCommand(ctx context.Context, input string) (Command, error) {
	words := strings.FieldsFunc(strings.ToLower(input), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	for _, word := range words {
		if _, ok := p.endKeywords[word]; ok {
			return End, nil
		}
	}
	return None, nil
}

// FailbackParser tries parsers in order and returns the first successful
// classification.
type FailbackParser struct {
	parsers []Parser
}

func NewFailbackParser(parsers ...Parser) *FailbackParser {
	return &FailbackParser{parsers: parsers}
}

func (p *FailbackParser) ParseCommand(ctx context.Context, input string) (Command, error) {
	var lastErr error
	for _, parser := range p.parsers {
		cmd, err := parser.ParseCommand(ctx, input)
		if err == nil {
			return cmd, nil
		}
		lastErr = err
	}
	return None, lastErr
}
