// Package textgen abstracts the external text-generation service behind a
// single-operation interface so the conversation core can swap vendors or use
// a deterministic stub in tests.
package textgen

import (
	"context"
	"errors"
)

// ErrUnavailable signals a permanently missing generation backend, e.g. no
// credentials were configured. Callers treat it like any other failure and use
// their local fallbacks.
var ErrUnavailable = errors.New("text generation unavailable")

type Options struct {
	// Instruction is the system/persona text sent alongside the prompt.
	Instruction string
	Temperature float32
	MaxTokens   int
}

type Option func(*Options)

func WithInstruction(instruction string) Option {
	return func(o *Options) {
		o.Instruction = instruction
	}
}

func WithTemperature(temperature float32) Option {
	return func(o *Options) {
		o.Temperature = temperature
	}
}

func WithMaxTokens(maxTokens int) Option {
	return func(o *Options) {
		o.MaxTokens = maxTokens
	}
}

// NewOptions resolves opts over the defaults used for every call.
func NewOptions(opts ...Option) *Options {
	options := &Options{
		Temperature: 0.5,
		MaxTokens:   1000,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(options)
		}
	}
	return options
}

// Generator produces one complete text response for a prompt. Implementations
// must return an error for empty responses so callers never observe a blank
// success.
type Generator interface {
	Generate(ctx context.Context, prompt string, opts ...Option) (string, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, prompt string, opts ...Option) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, prompt string, opts ...Option) (string, error) {
	return f(ctx, prompt, opts...)
}
