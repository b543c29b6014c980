package gtmagent

// ExtractResult holds the readable content extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title.
	Title string

	// Text is the cleaned body text, paragraphs separated by a blank line.
	Text string

	// Headings lists h1-h4 text in document order.
	Headings []string
}

// Extractor converts raw HTML into readable content.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}

// BrandExtractor pulls structured feature and benefit lists from pages on
// the brand allow-list.
type BrandExtractor interface {
	// Matches reports whether the URL's host is on the allow-list.
	Matches(url string) bool

	// ExtractBrand scans the HTML for feature and benefit lists. The readable
	// result is used for the fallback line heuristic.
	ExtractBrand(html string, readable *ExtractResult) *BrandExtract
}
