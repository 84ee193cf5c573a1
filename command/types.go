// Package command classifies a user turn into a conversation-level command
// before any stage-specific processing happens.
package command

import "context"

type Command string

const (
	// End terminates the conversation from any stage.
	End Command = "end"
	// None lets the current stage handle the input.
	None Command = "none"
)

type Parser interface {
	ParseCommand(ctx context.Context, input string) (Command, error)
}
