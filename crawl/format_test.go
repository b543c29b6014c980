package crawl_test

import (
	"testing"

	"github.com/fwojciec/gtmagent"
	"github.com/fwojciec/gtmagent/crawl"
	"github.com/stretchr/testify/assert"
)

func TestTruncateURL(t *testing.T) {
	t.Parallel()

	t.Run("returns URL unchanged when shorter than max", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "https://x.com", crawl.TruncateURL("https://x.com", 50))
	})

	t.Run("truncates with ellipsis when longer than max", func(t *testing.T) {
		t.Parallel()
		url := "https://example.com/very/long/path/to/enterprise-offers"
		result := crawl.TruncateURL(url, 20)
		assert.Equal(t, "...enterprise-offers", result)
		assert.Len(t, result, 20)
	})

	t.Run("returns URL unchanged when exactly max length", func(t *testing.T) {
		t.Parallel()
		url := "https://example.com"
		assert.Equal(t, url, crawl.TruncateURL(url, len(url)))
	})

	t.Run("returns empty string when maxLen is zero", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, crawl.TruncateURL("https://example.com", 0))
	})

	t.Run("returns empty string when maxLen is negative", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, crawl.TruncateURL("https://example.com", -1))
	})

	t.Run("returns prefix of URL when maxLen is very small", func(t *testing.T) {
		t.Parallel()
		// When maxLen < 4, we can't fit "..." prefix, so return URL prefix
		assert.Equal(t, "htt", crawl.TruncateURL("https://example.com", 3))
		assert.Equal(t, "ht", crawl.TruncateURL("https://example.com", 2))
		assert.Equal(t, "h", crawl.TruncateURL("https://example.com", 1))
	})

	t.Run("handles short URL with small maxLen", func(t *testing.T) {
		t.Parallel()
		// URL shorter than maxLen should return unchanged
		assert.Equal(t, "ab", crawl.TruncateURL("ab", 3))
		assert.Equal(t, "a", crawl.TruncateURL("a", 2))
	})
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	t.Run("formats bytes as B", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "512 B", crawl.FormatBytes(512))
	})

	t.Run("formats kilobytes as KB", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "1.5 KB", crawl.FormatBytes(1536))
	})

	t.Run("formats megabytes as MB", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "2.0 MB", crawl.FormatBytes(2*1024*1024))
	})
}

func TestTextBytes(t *testing.T) {
	t.Parallel()

	docs := []*gtmagent.Document{{Text: "abcd"}, {Text: ""}, {Text: "xyz"}}
	assert.Equal(t, 7, crawl.TextBytes(docs))
	assert.Equal(t, 0, crawl.TextBytes(nil))
}
