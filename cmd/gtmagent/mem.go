package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/gtmagent"
)

// Run executes the mem command.
func (c *MemCmd) Run(deps *Dependencies) error {
	hits, err := deps.Documents.Search(deps.Ctx, c.Query, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", gtmagent.ErrorMessage(err))
		return err
	}

	if len(hits) == 0 {
		fmt.Fprintln(deps.Stdout, "No matches.")
		return nil
	}

	for _, h := range hits {
		title := h.Title
		if title == "" {
			title = h.URL
		}
		fmt.Fprintf(deps.Stdout, "[%d] %s\n", h.ID, title)
		if h.URL != "" {
			fmt.Fprintf(deps.Stdout, "    %s\n", h.URL)
		}
		if h.Snippet != "" {
			fmt.Fprintf(deps.Stdout, "    %s\n", strings.ReplaceAll(h.Snippet, "\n", " "))
		}
	}
	return nil
}

// Run executes the get command.
func (c *GetCmd) Run(deps *Dependencies) error {
	doc, err := deps.Documents.FindDocumentByID(deps.Ctx, c.ID)
	if err != nil {
		if gtmagent.ErrorCode(err) == gtmagent.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: document %d not found. Use 'gtmagent mem QUERY' to find saved documents.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", gtmagent.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "# %s\n\n", doc.Title)
	if doc.URL != "" {
		fmt.Fprintf(deps.Stdout, "url: %s\n", doc.URL)
	}
	fmt.Fprintf(deps.Stdout, "source: %s\n", doc.Source)
	if doc.Tags != "" {
		fmt.Fprintf(deps.Stdout, "tags: %s\n", doc.Tags)
	}
	fmt.Fprintf(deps.Stdout, "saved: %s\n\n", doc.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintln(deps.Stdout, doc.Text)
	return nil
}
