package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/scouterlab/talentscout/textgen"
)

const extractNameInstruction = `Extract the full name (first and last name) from the user's response. Return only the cleaned full name, or 'NONE' if no valid full name can be identified.`

// NameExtractor pulls a proper name out of a free-form introduction. It asks
// the text-generation service first and falls back to the first two tokens of
// the raw input when the service is unavailable or unsure.
type NameExtractor struct {
	gen textgen.Generator
}

func NewNameExtractor(gen textgen.Generator) *NameExtractor {
	return &NameExtractor{gen: gen}
}

// Extract returns the candidate's full name, or false when no two-token name
// can be identified. It never returns an error; absence means re-prompt.
func (n *NameExtractor) Extract(ctx context.Context, input string) (string, bool) {
	if n != nil && n.gen != nil {
		response, err := n.gen.Generate(ctx,
			fmt.Sprintf("Extract the full name from: %s", input),
			textgen.WithInstruction(extractNameInstruction),
			textgen.WithTemperature(0.1),
		)
		if err == nil {
			cleaned := strings.TrimSpace(response)
			if !strings.Contains(strings.ToUpper(cleaned), "NONE") && len(strings.Fields(cleaned)) >= 2 {
				return cleaned, true
			}
		} else {
			slog.Debug("AI name extraction failed, using heuristic", "error", err)
		}
	}
	tokens := strings.Fields(input)
	if len(tokens) >= 2 {
		return tokens[0] + " " + tokens[1], true
	}
	return "", false
}
