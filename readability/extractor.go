// Package readability implements gtmagent.Extractor with Mozilla's
// Readability algorithm via github.com/go-shiori/go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/gtmagent"
	"github.com/fwojciec/gtmagent/goquery"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements gtmagent.Extractor at compile time.
var _ gtmagent.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract isolates the article with readability, then collects headings and
// paragraphs from it the same way the landmark extractor does.
func (e *Extractor) Extract(rawHTML string) (*gtmagent.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, gtmagent.Errorf(gtmagent.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return goquery.ContentFromHTML(article.Title, article.Content, article.TextContent)
}
