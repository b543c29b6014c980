package main

import (
	"fmt"

	"github.com/fwojciec/gtmagent"
)

// Run executes the research command.
func (c *ResearchCmd) Run(deps *Dependencies) error {
	report, err := deps.Researcher.Research(deps.Ctx, c.Query, c.MaxPages)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", gtmagent.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %s\n", report.SummaryPath)
	if len(report.Sources) > 0 {
		fmt.Fprintf(deps.Stdout, "\nSources (%d):\n", len(report.Sources))
		for _, s := range report.Sources {
			fmt.Fprintf(deps.Stdout, "  - %s\n", s.URL)
		}
	}
	return nil
}

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	path, err := deps.Researcher.Generate(deps.Ctx, c.Kind, c.Context)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", gtmagent.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %s\n", path)
	return nil
}
