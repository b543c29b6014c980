package goquery

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/gtmagent"
)

// BrandDomains lists the hosts (and their subdomains) that get brand extraction.
var BrandDomains = []string{
	"eand.com",
	"eandenterprise.com",
	"eandenterprise.ae",
	"etisalat.ae",
}

// brandStems are matched against class and id attributes, in this order.
var brandStems = []string{"feature", "benefit", "advantage", "capabil", "why", "value"}

const (
	maxBrandItems      = 30
	minBrandItemLen    = 5
	maxFallbackLineLen = 140
)

// Ensure BrandExtractor implements gtmagent.BrandExtractor at compile time.
var _ gtmagent.BrandExtractor = (*BrandExtractor)(nil)

// BrandExtractor pulls feature and benefit lists from the brand's own sites.
type BrandExtractor struct {
	Domains []string
}

// NewBrandExtractor creates a BrandExtractor for BrandDomains.
func NewBrandExtractor() *BrandExtractor {
	return &BrandExtractor{Domains: BrandDomains}
}

// Matches reports whether the URL's host ends with an allow-listed domain.
func (e *BrandExtractor) Matches(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return false
	}
	for _, d := range e.Domains {
		if strings.HasSuffix(host, d) {
			return true
		}
	}
	return false
}

// ExtractBrand scans list items inside sections whose class or id mentions
// a feature or benefit stem. When no features are found it falls back to
// short descriptive lines of the readable text.
func (e *BrandExtractor) ExtractBrand(html string, readable *gtmagent.ExtractResult) *gtmagent.BrandExtract {
	if readable == nil {
		readable = &gtmagent.ExtractResult{}
	}
	out := &gtmagent.BrandExtract{
		Title:    readable.Title,
		Headings: readable.Headings,
		RawText:  readable.Text,
	}
	if out.Headings == nil {
		out.Headings = []string{}
	}

	var features, benefits []string
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err == nil {
		containers := doc.Find("section, div, ul")
		for _, stem := range brandStems {
			isBenefit := stem == "benefit" || stem == "why" || stem == "value"
			containers.Each(func(_ int, s *goquery.Selection) {
				if !strings.Contains(attrKey(s), stem) {
					return
				}
				s.Find("li").Each(func(_ int, li *goquery.Selection) {
					text := nodeText(li)
					if utf8.RuneCountInString(text) < minBrandItemLen {
						return
					}
					if isBenefit {
						benefits = append(benefits, text)
					} else {
						features = append(features, text)
					}
				})
			})
		}
	}

	if len(features) == 0 {
		for _, line := range strings.Split(readable.Text, "\n") {
			line = strings.TrimSpace(line)
			n := utf8.RuneCountInString(line)
			if n > minBrandItemLen && n < maxFallbackLineLen && (strings.Contains(line, ":") || strings.HasSuffix(line, ".")) {
				features = append(features, line)
			}
		}
	}

	out.Features = dedupeCap(features, maxBrandItems)
	out.Benefits = dedupeCap(benefits, maxBrandItems)
	return out
}

// attrKey returns the lower-cased class list and id separated by a space.
func attrKey(s *goquery.Selection) string {
	class, _ := s.Attr("class")
	id, _ := s.Attr("id")
	return strings.ToLower(strings.Join(strings.Fields(class), " ") + " " + id)
}

func dedupeCap(items []string, limit int) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, min(len(items), limit))
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
		if len(out) == limit {
			break
		}
	}
	return out
}
