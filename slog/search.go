package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/gtmagent"
)

// Ensure LoggingSearcher implements gtmagent.Searcher.
var _ gtmagent.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with debug logging.
type LoggingSearcher struct {
	next   gtmagent.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next gtmagent.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the operation.
func (s *LoggingSearcher) Search(ctx context.Context, query string, maxResults int) (results []gtmagent.SearchResult, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search",
			"query", query,
			"max", maxResults,
			"count", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, query, maxResults)
}

// Ensure LoggingGenerator implements gtmagent.Generator.
var _ gtmagent.Generator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps a Generator with debug logging.
type LoggingGenerator struct {
	next   gtmagent.Generator
	logger *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator.
func NewLoggingGenerator(next gtmagent.Generator, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger}
}

// Generate delegates to the wrapped generator and logs prompt and output sizes.
func (g *LoggingGenerator) Generate(ctx context.Context, req gtmagent.GenerateRequest) (text string, err error) {
	defer func(begin time.Time) {
		g.logger.Info("generate",
			"prompt_bytes", len(req.Prompt),
			"max_tokens", req.MaxTokens,
			"bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Generate(ctx, req)
}
