package main

import (
	"fmt"

	"github.com/fwojciec/gtmagent"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	results, err := deps.Searcher.Search(deps.Ctx, c.Query, c.MaxResults)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", gtmagent.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No results.")
		return nil
	}

	for i, r := range results {
		title := r.Title
		if title == "" {
			title = r.URL
		}
		fmt.Fprintf(deps.Stdout, "%d. %s\n   %s\n", i+1, title, r.URL)
		if r.Snippet != "" {
			fmt.Fprintf(deps.Stdout, "   %s\n", r.Snippet)
		}
		fmt.Fprintf(deps.Stdout, "   (%s)\n", r.Source)
	}
	return nil
}
