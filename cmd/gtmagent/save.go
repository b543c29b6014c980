package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/gtmagent"
)

// Run executes the save command.
func (c *SaveCmd) Run(deps *Dependencies) error {
	doc, err := deps.Scraper.Scrape(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", gtmagent.ErrorMessage(err))
		return err
	}
	if doc == nil {
		fmt.Fprintf(deps.Stderr, "error: could not retrieve %s (unreachable or disallowed by robots.txt)\n", c.URL)
		return gtmagent.Errorf(gtmagent.EUNAVAILABLE, "nothing scraped from %s", c.URL)
	}

	doc.Source = gtmagent.DefaultSource
	if err := deps.Documents.AddDocument(deps.Ctx, doc); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", gtmagent.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %q (id %d)\n", doc.Title, doc.ID)
	return nil
}

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	doc, err := deps.Scraper.Scrape(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", gtmagent.ErrorMessage(err))
		return err
	}
	if doc == nil {
		fmt.Fprintf(deps.Stderr, "error: could not retrieve %s (unreachable or disallowed by robots.txt)\n", c.URL)
		return gtmagent.Errorf(gtmagent.EUNAVAILABLE, "nothing scraped from %s", c.URL)
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(doc)
}
