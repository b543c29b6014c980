package gtmagent_test

import (
	"context"
	"testing"

	"github.com/fwojciec/gtmagent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceholderGenerator_Generate(t *testing.T) {
	t.Parallel()

	out, err := gtmagent.PlaceholderGenerator{}.Generate(context.Background(), gtmagent.GenerateRequest{
		System:    "You are the GTM Director.",
		Prompt:    "Summarize 5G private networks.",
		MaxTokens: 1200,
	})

	require.NoError(t, err)
	assert.Contains(t, out, "SYSTEM: You are the GTM Director.")
	assert.Contains(t, out, "PROMPT: Summarize 5G private networks.")
	assert.Contains(t, out, gtmagent.PlaceholderNotice)
}

func TestDedupeResults(t *testing.T) {
	t.Parallel()

	t.Run("keeps first occurrence of each URL", func(t *testing.T) {
		t.Parallel()

		results := []gtmagent.SearchResult{
			{URL: "https://a.example", Source: "duckduckgo"},
			{URL: "https://b.example", Source: "duckduckgo"},
			{URL: "https://a.example", Source: "brave"},
			{URL: "https://c.example", Source: "brave"},
		}

		got := gtmagent.DedupeResults(results)

		require.Len(t, got, 3)
		assert.Equal(t, "https://a.example", got[0].URL)
		assert.Equal(t, "duckduckgo", got[0].Source)
		assert.Equal(t, "https://b.example", got[1].URL)
		assert.Equal(t, "https://c.example", got[2].URL)
	})

	t.Run("drops results without URL", func(t *testing.T) {
		t.Parallel()

		got := gtmagent.DedupeResults([]gtmagent.SearchResult{
			{Title: "no link"},
			{URL: "https://a.example"},
		})

		require.Len(t, got, 1)
		assert.Equal(t, "https://a.example", got[0].URL)
	})
}

func TestIsAbsent(t *testing.T) {
	t.Parallel()

	assert.True(t, gtmagent.IsAbsent(gtmagent.Errorf(gtmagent.EDISALLOWED, "blocked")))
	assert.True(t, gtmagent.IsAbsent(gtmagent.Errorf(gtmagent.EUNAVAILABLE, "HTTP 404")))
	assert.False(t, gtmagent.IsAbsent(assert.AnError))
	assert.False(t, gtmagent.IsAbsent(nil))
}
