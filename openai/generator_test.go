package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/gtmagent"
	"github.com/fwojciec/gtmagent/openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRequest(t *testing.T) {
	t.Parallel()

	req := openai.BuildRequest("gpt-4o-mini", gtmagent.GenerateRequest{
		System:      "sys",
		Prompt:      "user prompt",
		Temperature: 0.3,
		MaxTokens:   1200,
	})

	assert.Equal(t, "gpt-4o-mini", req.Model)
	require.Len(t, req.Messages, 2)
	assert.Equal(t, "system", req.Messages[0].Role)
	assert.Equal(t, "sys", req.Messages[0].Content)
	assert.Equal(t, "user", req.Messages[1].Role)
	assert.Equal(t, "user prompt", req.Messages[1].Content)
	assert.InDelta(t, 0.3, req.Temperature, 0.0001)
	assert.Equal(t, 1200, req.MaxTokens)
}

func TestGenerator_Generate(t *testing.T) {
	t.Parallel()

	t.Run("returns the first choice", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

			var body struct {
				Model    string `json:"model"`
				Messages []struct {
					Role    string `json:"role"`
					Content string `json:"content"`
				} `json:"messages"`
			}
			if assert.NoError(t, json.NewDecoder(r.Body).Decode(&body)) {
				assert.Equal(t, "custom-model", body.Model)
				assert.Len(t, body.Messages, 2)
			}

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"x","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"# Outline"},"finish_reason":"stop"}]}`))
		}))
		defer srv.Close()

		g := openai.NewGenerator("test-key", srv.URL+"/v1", "custom-model")

		out, err := g.Generate(context.Background(), gtmagent.GenerateRequest{System: "s", Prompt: "p"})

		require.NoError(t, err)
		assert.Equal(t, "# Outline", out)
	})

	t.Run("returns EINTERNAL when there are no choices", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"choices":[]}`))
		}))
		defer srv.Close()

		g := openai.NewGenerator("k", srv.URL+"/v1", "")

		_, err := g.Generate(context.Background(), gtmagent.GenerateRequest{Prompt: "p"})

		require.Error(t, err)
		assert.Equal(t, gtmagent.EINTERNAL, gtmagent.ErrorCode(err))
	})

	t.Run("returns API errors", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"message":"bad key","type":"invalid_request_error"}}`))
		}))
		defer srv.Close()

		g := openai.NewGenerator("k", srv.URL+"/v1", "")

		_, err := g.Generate(context.Background(), gtmagent.GenerateRequest{Prompt: "p"})

		require.Error(t, err)
	})

	t.Run("returns EINVALID for empty prompt", func(t *testing.T) {
		t.Parallel()

		g := openai.NewGenerator("k", "", "")

		_, err := g.Generate(context.Background(), gtmagent.GenerateRequest{})

		assert.Equal(t, gtmagent.EINVALID, gtmagent.ErrorCode(err))
	})
}
