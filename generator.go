package gtmagent

import (
	"context"
	"fmt"
)

// GenerateRequest holds the inputs for a single language model call.
type GenerateRequest struct {
	System      string
	Prompt      string
	Temperature float32
	MaxTokens   int
}

// Generator produces text from a system and user prompt.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

// Ensure PlaceholderGenerator implements Generator at compile time.
var _ Generator = (*PlaceholderGenerator)(nil)

// PlaceholderGenerator is used when no model credential is configured.
// It echoes the prompts with a marked outline request so that downstream
// document writing still succeeds.
type PlaceholderGenerator struct{}

// Generate returns the placeholder outline. It never fails.
func (PlaceholderGenerator) Generate(_ context.Context, req GenerateRequest) (string, error) {
	return fmt.Sprintf("SYSTEM: %s\n\nPROMPT: %s\n\n%s", req.System, req.Prompt, PlaceholderNotice), nil
}

// PlaceholderNotice marks output produced without a language model.
const PlaceholderNotice = "[LLM disabled. Provide a concise, bulletized outline covering: objective, audience, key messages, channels, KPIs, timeline, and next actions.]"
