package mock

import "github.com/fwojciec/gtmagent"

var _ gtmagent.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of gtmagent.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*gtmagent.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*gtmagent.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ gtmagent.BrandExtractor = (*BrandExtractor)(nil)

// BrandExtractor is a mock implementation of gtmagent.BrandExtractor.
type BrandExtractor struct {
	MatchesFn      func(url string) bool
	ExtractBrandFn func(html string, readable *gtmagent.ExtractResult) *gtmagent.BrandExtract
}

func (e *BrandExtractor) Matches(url string) bool {
	return e.MatchesFn(url)
}

func (e *BrandExtractor) ExtractBrand(html string, readable *gtmagent.ExtractResult) *gtmagent.BrandExtract {
	return e.ExtractBrandFn(html, readable)
}
