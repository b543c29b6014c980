// Package goquery implements HTML content, brand and link extraction
// with github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/gtmagent"
)

// mainSelectors are tried in order; the first match is the main content node.
var mainSelectors = []string{"main", "article", "section", "body"}

// Ensure Extractor implements gtmagent.Extractor at compile time.
var _ gtmagent.Extractor = (*Extractor)(nil)

// Extractor pulls readable content from the page's main landmark.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the page title, the body text of the main landmark and
// its h1-h4 headings. Pages without recognizable content yield an empty
// result, not an error.
func (e *Extractor) Extract(html string) (*gtmagent.ExtractResult, error) {
	if strings.TrimSpace(html) == "" {
		return nil, gtmagent.Errorf(gtmagent.EINVALID, "empty HTML")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, gtmagent.Errorf(gtmagent.EINVALID, "failed to parse HTML: %v", err)
	}
	doc.Find(strippedTags).Remove()

	result := &gtmagent.ExtractResult{
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
	}

	main := mainNode(doc)
	if main == nil {
		return result, nil
	}
	result.Headings = CollectHeadings(main)
	result.Text = JoinParagraphs(CollectParagraphs(main))

	return result, nil
}

func mainNode(doc *goquery.Document) *goquery.Selection {
	for _, sel := range mainSelectors {
		if s := doc.Find(sel).First(); s.Length() > 0 {
			return s
		}
	}
	return nil
}
