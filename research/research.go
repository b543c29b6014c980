// Package research implements the research and artifact generation
// workflows on top of search, scraping, storage and a text generator.
package research

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/gtmagent"
)

// DefaultMaxPages is the default number of search results to scrape.
const DefaultMaxPages = 6

// MaxContentRunes caps the scraped content included in a research prompt.
const MaxContentRunes = 24000

const (
	researchSystem = "You are the Go-To-Market Director for e& (etisalat) UAE B2B. Synthesize research with UAE market context and B2B buyer needs."
	generateSystem = "You are the GTM Director for e& UAE B2B. Produce practical, on-brand content ready for client-facing use. Include bullets, headlines, and clear CTAs."

	researchTemperature = 0.3
	researchMaxTokens   = 1200
	generateMaxTokens   = 2400
)

// Ensure Researcher implements gtmagent.Researcher at compile time.
var _ gtmagent.Researcher = (*Researcher)(nil)

// Researcher runs the research and generation workflows.
type Researcher struct {
	Searcher  gtmagent.Searcher
	Scraper   gtmagent.Scraper
	Documents gtmagent.DocumentService
	Generator gtmagent.Generator
	Artifacts gtmagent.ArtifactWriter

	// Logger receives store failures. Nil discards.
	Logger *slog.Logger
}

// Research searches for query, scrapes and stores up to maxPages results,
// and writes a model-generated summary. Pages that cannot be scraped are
// skipped, so the summary may cover fewer sources than requested.
func (r *Researcher) Research(ctx context.Context, query string, maxPages int) (*gtmagent.Report, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, gtmagent.Errorf(gtmagent.EINVALID, "query required")
	}
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	results, err := r.Searcher.Search(ctx, query, maxPages)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	var scraped []*gtmagent.Document
	for _, res := range results {
		doc, err := r.Scraper.Scrape(ctx, res.URL)
		if err != nil {
			return nil, err
		}
		if doc == nil {
			continue
		}
		scraped = append(scraped, doc)

		doc.Source = gtmagent.DefaultSource
		doc.Tags = query
		if err := r.Documents.AddDocument(ctx, doc); err != nil {
			r.logger().Warn("store failed", "url", doc.URL, "error", err)
		}
	}

	summary, err := r.Generator.Generate(ctx, gtmagent.GenerateRequest{
		System:      researchSystem,
		Prompt:      BuildResearchPrompt(query, scraped),
		Temperature: researchTemperature,
		MaxTokens:   researchMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("generate summary: %w", err)
	}

	path, err := r.Artifacts.Write("research", summary)
	if err != nil {
		return nil, fmt.Errorf("write summary: %w", err)
	}

	return &gtmagent.Report{SummaryPath: path, Sources: results}, nil
}

// Generate produces an artifact of the given kind from key/value fields
// and returns the path it was written to.
func (r *Researcher) Generate(ctx context.Context, kind string, fields map[string]string) (string, error) {
	kind = strings.TrimSpace(kind)
	if kind == "" {
		return "", gtmagent.Errorf(gtmagent.EINVALID, "kind required")
	}

	text, err := r.Generator.Generate(ctx, gtmagent.GenerateRequest{
		System:      generateSystem,
		Prompt:      BuildGeneratePrompt(kind, fields),
		Temperature: researchTemperature,
		MaxTokens:   generateMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("generate %s: %w", kind, err)
	}

	return r.Artifacts.Write(kind, text)
}

func (r *Researcher) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r.Logger
}

// BuildResearchPrompt formats the summary prompt for query and docs.
// Every document is listed as a source; documents with identical text
// contribute their content once.
func BuildResearchPrompt(query string, docs []*gtmagent.Document) string {
	var sources strings.Builder
	for i, doc := range docs {
		if i > 0 {
			sources.WriteString("\n")
		}
		label := doc.Title
		if label == "" {
			label = doc.URL
		}
		sources.WriteString("- ")
		sources.WriteString(label)
	}

	seen := make(map[uint64]bool, len(docs))
	texts := make([]string, 0, len(docs))
	for _, doc := range docs {
		h := xxhash.Sum64String(doc.Text)
		if seen[h] {
			continue
		}
		seen[h] = true
		texts = append(texts, doc.Text)
	}
	content := TruncateRunes(strings.Join(texts, "\n\n"), MaxContentRunes)

	return fmt.Sprintf("Query: %s\n\nSources:\n%s\n\nContent:\n%s\n\nProvide: key insights, trends, competitor notes, opportunities for e& enterprise, and immediate next actions. Be concise.",
		query, sources.String(), content)
}

// BuildGeneratePrompt formats the generic artifact prompt. Fields
// are listed one per line in key order under Context.
func BuildGeneratePrompt(kind string, fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(fields[k])
		b.WriteString("\n")
	}

	return fmt.Sprintf("Task: %s\n\nContext:\n%s\nDeliver a complete, polished artifact in Markdown.", kind, b.String())
}

// TruncateRunes returns s cut to at most n runes.
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
