// Package gemini implements gtmagent.Generator with Google Gemini.
package gemini

import (
	"context"

	"github.com/fwojciec/gtmagent"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Generator implements gtmagent.Generator at compile time.
var _ gtmagent.Generator = (*Generator)(nil)

// Generator implements gtmagent.Generator using Google Gemini.
type Generator struct {
	client *genai.Client
	model  string
}

// NewGenerator creates a new Generator. An empty model selects DefaultModel.
func NewGenerator(client *genai.Client, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: client, model: model}
}

// Generate sends the prompt with the system instruction and sampling limits
// from req and returns the response text.
func (g *Generator) Generate(ctx context.Context, req gtmagent.GenerateRequest) (string, error) {
	if req.Prompt == "" {
		return "", gtmagent.Errorf(gtmagent.EINVALID, "prompt required")
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: req.Prompt}},
		}},
		BuildConfig(req),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", gtmagent.Errorf(gtmagent.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for a request.
func BuildConfig(req gtmagent.GenerateRequest) *genai.GenerateContentConfig {
	temp := req.Temperature
	config := &genai.GenerateContentConfig{
		Temperature: &temp,
	}
	if req.System != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		}
	}
	if req.MaxTokens > 0 {
		config.MaxOutputTokens = int32(req.MaxTokens)
	}
	return config
}
