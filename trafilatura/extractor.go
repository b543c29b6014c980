// Package trafilatura implements gtmagent.Extractor with
// github.com/markusmobius/go-trafilatura.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/gtmagent"
	"github.com/fwojciec/gtmagent/goquery"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements gtmagent.Extractor at compile time.
var _ gtmagent.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract isolates the main content node with trafilatura, then collects
// headings and paragraphs from it.
func (e *Extractor) Extract(rawHTML string) (*gtmagent.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, gtmagent.Errorf(gtmagent.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	return goquery.ContentFromNode(result.Metadata.Title, result.ContentNode, result.ContentText), nil
}
