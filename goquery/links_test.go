package goquery_test

import (
	"testing"

	"github.com/fwojciec/gtmagent"
	"github.com/fwojciec/gtmagent/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLinks(t *testing.T) {
	t.Parallel()

	t.Run("resolves relative links against the page URL", func(t *testing.T) {
		t.Parallel()

		html := `<body>
<a href="/about">About</a>
<a href="team">Team</a>
<a href="https://other.example.org/x">External</a>
</body>`

		links, err := goquery.ExtractLinks(html, "https://example.com/company/")

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://example.com/about",
			"https://example.com/company/team",
			"https://other.example.org/x",
		}, links)
	})

	t.Run("strips fragments and deduplicates", func(t *testing.T) {
		t.Parallel()

		html := `<a href="/a#top">A</a><a href="/a">A again</a><a href=" /b ">B</a>`

		links, err := goquery.ExtractLinks(html, "https://example.com/")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/a", "https://example.com/b"}, links)
	})

	t.Run("skips non-HTTP and self links", func(t *testing.T) {
		t.Parallel()

		html := `<a href="mailto:sales@example.com">Mail</a>
<a href="javascript:void(0)">JS</a>
<a href="tel:+971">Call</a>
<a href="#section">Anchor</a>
<a href="">Empty</a>
<a href="/next">Next</a>`

		links, err := goquery.ExtractLinks(html, "https://example.com/page")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/next"}, links)
	})

	t.Run("returns error for invalid page URL", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.ExtractLinks(`<a href="/x">x</a>`, "://bad")

		require.Error(t, err)
		assert.Equal(t, gtmagent.EINVALID, gtmagent.ErrorCode(err))
	})

	t.Run("handles empty HTML", func(t *testing.T) {
		t.Parallel()

		links, err := goquery.ExtractLinks("", "https://example.com")

		require.NoError(t, err)
		assert.Empty(t, links)
	})
}
