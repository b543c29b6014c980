package main

import (
	"context"
	"fmt"

	"github.com/fwojciec/gtmagent"
	"github.com/fwojciec/gtmagent/crawl"
)

// Run executes the crawl-site command.
func (c *CrawlSiteCmd) Run(deps *Dependencies) error {
	progress := func(p gtmagent.CrawlProgress) {
		if p.Error != nil {
			fmt.Fprintf(deps.Stdout, "  skip %s: %s\n", crawl.TruncateURL(p.URL, 80), skipReason(p.Error))
			return
		}
		fmt.Fprintf(deps.Stdout, "  [%d] %s (%d queued)\n", p.Completed, crawl.TruncateURL(p.URL, 80), p.Queued)
	}

	docs, err := deps.Crawler.Crawl(deps.Ctx, c.URL, gtmagent.CrawlOptions{
		MaxPages:       c.MaxPages,
		SameDomainOnly: c.SameDomainOnly,
		UseSitemap:     c.Sitemap,
	}, progress)
	if err != nil && len(docs) == 0 {
		fmt.Fprintf(deps.Stderr, "error: %s\n", gtmagent.ErrorMessage(err))
		return err
	}

	if len(docs) > 0 {
		// Pages gathered before an interrupt are still saved.
		if _, saveErr := deps.Documents.BulkAdd(context.WithoutCancel(deps.Ctx), docs); saveErr != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", gtmagent.ErrorMessage(saveErr))
			return saveErr
		}
	}

	fmt.Fprintf(deps.Stdout, "Crawled %d pages (%s)\n", len(docs), crawl.FormatBytes(crawl.TextBytes(docs)))
	return err
}

// skipReason describes why a page was skipped. Network errors have no
// application message, so their text is shown as is.
func skipReason(err error) string {
	if gtmagent.ErrorCode(err) == gtmagent.EINTERNAL {
		return err.Error()
	}
	return gtmagent.ErrorMessage(err)
}
