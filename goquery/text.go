package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/gtmagent"
	"golang.org/x/net/html"
)

// strippedTags are removed before any text is collected.
const strippedTags = "script, style, noscript, iframe, svg"

// minParagraphWords is the word count a p or li must exceed to count as body text.
const minParagraphWords = 3

// nodeText returns the trimmed text nodes under sel joined by single spaces.
func nodeText(sel *goquery.Selection) string {
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if s := strings.TrimSpace(n.Data); s != "" {
				parts = append(parts, s)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return strings.Join(parts, " ")
}

// CollectHeadings returns the non-empty h1-h4 texts under root in document order.
func CollectHeadings(root *goquery.Selection) []string {
	var headings []string
	root.Find("h1, h2, h3, h4").Each(func(_ int, s *goquery.Selection) {
		if text := nodeText(s); text != "" {
			headings = append(headings, text)
		}
	})
	return headings
}

// CollectParagraphs returns the p and li texts under root that are longer
// than minParagraphWords words, in document order.
func CollectParagraphs(root *goquery.Selection) []string {
	var paragraphs []string
	root.Find("p, li").Each(func(_ int, s *goquery.Selection) {
		text := nodeText(s)
		if len(strings.Fields(text)) > minParagraphWords {
			paragraphs = append(paragraphs, text)
		}
	})
	return paragraphs
}

// JoinParagraphs joins paragraphs with a blank line.
func JoinParagraphs(paragraphs []string) string {
	return strings.Join(paragraphs, "\n\n")
}

// ContentFromHTML collects headings and body text from an HTML fragment that
// already holds only the main content, as produced by readability-style
// extractors. fallbackText is used when no paragraph passes the word filter.
func ContentFromHTML(title, fragment, fallbackText string) (*gtmagent.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil, gtmagent.Errorf(gtmagent.EINVALID, "failed to parse content HTML: %v", err)
	}
	return contentFrom(title, doc.Selection, fallbackText), nil
}

// ContentFromNode is like ContentFromHTML for an already parsed node.
func ContentFromNode(title string, n *html.Node, fallbackText string) *gtmagent.ExtractResult {
	if n == nil {
		return contentFrom(title, &goquery.Selection{}, fallbackText)
	}
	return contentFrom(title, goquery.NewDocumentFromNode(n).Selection, fallbackText)
}

func contentFrom(title string, root *goquery.Selection, fallbackText string) *gtmagent.ExtractResult {
	root.Find(strippedTags).Remove()
	result := &gtmagent.ExtractResult{
		Title:    strings.TrimSpace(title),
		Headings: CollectHeadings(root),
		Text:     JoinParagraphs(CollectParagraphs(root)),
	}
	if result.Text == "" {
		result.Text = strings.TrimSpace(fallbackText)
	}
	return result
}
