package gtmagent

import "context"

// Report is the outcome of a research run.
type Report struct {
	// SummaryPath is where the generated summary was written.
	SummaryPath string `json:"summary_path"`
	// Sources are the search results the run started from, including
	// those that could not be scraped.
	Sources []SearchResult `json:"sources"`
}

// Researcher runs the research and artifact generation workflows.
type Researcher interface {
	// Research searches for query, scrapes and stores up to maxPages results
	// and writes a generated summary.
	Research(ctx context.Context, query string, maxPages int) (*Report, error)
	// Generate writes an artifact of the given kind built from fields and
	// returns its path.
	Generate(ctx context.Context, kind string, fields map[string]string) (string, error)
}
