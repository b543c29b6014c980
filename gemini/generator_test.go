package gemini_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/gtmagent"
	"github.com/fwojciec/gtmagent/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestBuildConfig(t *testing.T) {
	t.Parallel()

	t.Run("sets system instruction and sampling limits", func(t *testing.T) {
		t.Parallel()

		config := gemini.BuildConfig(gtmagent.GenerateRequest{
			System:      "You are a senior B2B marketer.",
			Prompt:      "ignored here",
			Temperature: 0.3,
			MaxTokens:   1200,
		})

		require.NotNil(t, config.SystemInstruction)
		require.Len(t, config.SystemInstruction.Parts, 1)
		assert.Equal(t, "You are a senior B2B marketer.", config.SystemInstruction.Parts[0].Text)
		require.NotNil(t, config.Temperature)
		assert.InDelta(t, 0.3, *config.Temperature, 0.0001)
		assert.Equal(t, int32(1200), config.MaxOutputTokens)
	})

	t.Run("omits empty system instruction", func(t *testing.T) {
		t.Parallel()

		config := gemini.BuildConfig(gtmagent.GenerateRequest{Prompt: "p"})

		assert.Nil(t, config.SystemInstruction)
		assert.Zero(t, config.MaxOutputTokens)
	})
}

func TestGenerator_Generate(t *testing.T) {
	t.Parallel()

	t.Run("returns EINVALID for empty prompt", func(t *testing.T) {
		t.Parallel()

		g := gemini.NewGenerator(nil, "")

		_, err := g.Generate(context.Background(), gtmagent.GenerateRequest{})

		require.Error(t, err)
		assert.Equal(t, gtmagent.EINVALID, gtmagent.ErrorCode(err))
	})

	t.Run("returns the response text", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Contains(t, r.URL.Path, gemini.DefaultModel)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"## Summary"}]}}]}`))
		}))
		defer srv.Close()

		client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
			APIKey:      "test-key",
			Backend:     genai.BackendGeminiAPI,
			HTTPClient:  srv.Client(),
			HTTPOptions: genai.HTTPOptions{BaseURL: srv.URL},
		})
		require.NoError(t, err)

		g := gemini.NewGenerator(client, "")

		out, err := g.Generate(context.Background(), gtmagent.GenerateRequest{System: "s", Prompt: "p", Temperature: 0.3, MaxTokens: 100})

		require.NoError(t, err)
		assert.Equal(t, "## Summary", out)
	})
}
