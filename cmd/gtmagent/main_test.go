package main_test

import (
	"testing"

	main "github.com/fwojciec/gtmagent/cmd/gtmagent"
	"github.com/fwojciec/gtmagent/crawl"
	"github.com/fwojciec/gtmagent/goquery"
	"github.com/fwojciec/gtmagent/mock"
	"github.com/stretchr/testify/assert"
)

func TestNewPipeline(t *testing.T) {
	t.Parallel()

	fetcher := &mock.Fetcher{}
	scraper, crawler := main.NewPipeline(fetcher, goquery.NewExtractor(), &mock.SitemapService{}, nil)

	t.Run("retries transport failures", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, crawl.DefaultRetryDelays(), scraper.RetryDelays)
		assert.Equal(t, crawl.DefaultRetryDelays(), crawler.RetryDelays)
	})

	t.Run("crawler shares the scraper and fetcher", func(t *testing.T) {
		t.Parallel()

		assert.Same(t, scraper, crawler.Scraper)
		assert.Same(t, fetcher, scraper.Fetcher)
		assert.NotNil(t, scraper.Brand)
	})
}
