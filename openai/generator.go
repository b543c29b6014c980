// Package openai implements gtmagent.Generator with the OpenAI chat
// completions API via github.com/sashabaranov/go-openai.
package openai

import (
	"context"

	"github.com/fwojciec/gtmagent"
	"github.com/sashabaranov/go-openai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4o-mini"

// Ensure Generator implements gtmagent.Generator at compile time.
var _ gtmagent.Generator = (*Generator)(nil)

// Generator implements gtmagent.Generator using chat completions.
type Generator struct {
	client *openai.Client
	model  string
}

// NewGenerator creates a Generator for the given API key. A non-empty
// baseURL points the client at an OpenAI-compatible endpoint.
func NewGenerator(apiKey, baseURL, model string) *Generator {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return NewGeneratorWithClient(openai.NewClientWithConfig(cfg), model)
}

// NewGeneratorWithClient creates a Generator around an existing client.
// An empty model selects DefaultModel.
func NewGeneratorWithClient(client *openai.Client, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: client, model: model}
}

// Generate sends the system and user messages and returns the first choice.
func (g *Generator) Generate(ctx context.Context, req gtmagent.GenerateRequest) (string, error) {
	if req.Prompt == "" {
		return "", gtmagent.Errorf(gtmagent.EINVALID, "prompt required")
	}

	resp, err := g.client.CreateChatCompletion(ctx, BuildRequest(g.model, req))
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", gtmagent.Errorf(gtmagent.EINTERNAL, "openai returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

// BuildRequest returns the chat completion request for req.
func BuildRequest(model string, req gtmagent.GenerateRequest) openai.ChatCompletionRequest {
	var messages []openai.ChatCompletionMessage
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Prompt,
	})

	return openai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
}
