package command

import (
	"context"
	"errors"
	"testing"
)

func TestLocalParserEndKeywords(t *testing.T) {
	parser := NewLocalParser()
	ctx := context.Background()

	ends := []string{
		"bye", "Goodbye!", "I want to EXIT", "quit", "end", "please stop",
		"finish", "ok I'm done", "cancel", "terminate", "close", "I have to leave now",
	}
	for _, input := range ends {
		cmd, err := parser.ParseCommand(ctx, input)
		if err != nil {
			t.Fatalf("ParseCommand(%q): %v", input, err)
		}
		if cmd != End {
			t.Errorf("ParseCommand(%q) = %s, want %s", input, cmd, End)
		}
	}
}

func TestLocalParserIgnoresEmbeddedWords(t *testing.T) {
	parser := NewLocalParser()
	ctx := context.Background()

	continues := []string{
		"Backend Engineer",     // contains "end"
		"Frontend Developer",   // contains "end"
		"I enjoy goodbyeless conversations",
		"my name is John Doe",
		"Go, Python, Postgres",
	}
	for _, input := range continues {
		cmd, err := parser.ParseCommand(ctx, input)
		if err != nil {
			t.Fatalf("ParseCommand(%q): %v", input, err)
		}
		if cmd != None {
			t.Errorf("ParseCommand(%q) = %s, want %s", input, cmd, None)
		}
	}
}

type failingParser struct{}

func (failingParser) ParseCommand(ctx context.Context, input string) (Command, error) {
	return None, errors.New("parser offline")
}

func TestFailbackParser(t *testing.T) {
	ctx := context.Background()
	parser := NewFailbackParser(failingParser{}, NewLocalParser())

	cmd, err := parser.ParseCommand(ctx, "goodbye")
	if err != nil {
		t.Fatalf("ParseCommand: %v", err)
	}
	if cmd != End {
		t.Errorf("ParseCommand = %s, want %s", cmd, End)
	}

	cmd, err = parser.ParseCommand(ctx, "hello")
	if err != nil {
		t.Fatalf("ParseCommand: %v", err)
	}
	if cmd != None {
		t.Errorf("ParseCommand = %s, want %s", cmd, None)
	}
}
