package gtmagent

import (
	"context"
	"time"
)

// DefaultSource is the provenance tag for content retrieved from the web.
const DefaultSource = "web"

// Document represents a unit of retrieved content.
type Document struct {
	ID        int64     `json:"id,omitempty"`
	URL       string    `json:"url,omitempty"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	Headings  []string  `json:"headings,omitempty"`
	Source    string    `json:"source,omitempty"`
	Tags      string    `json:"tags,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitzero"`

	// BrandExtract is only set for pages on the brand allow-list.
	BrandExtract *BrandExtract `json:"eand_extract,omitempty"`
}

// Validate returns an error if the document contains invalid fields. A
// document needs at least one of URL, title or text; any one is enough.
func (d *Document) Validate() error {
	if d.URL == "" && d.Title == "" && d.Text == "" {
		return Errorf(EINVALID, "document has no url, title or text")
	}
	return nil
}

// BrandExtract holds structured product features and benefits scraped from
// one of the brand's own sites.
type BrandExtract struct {
	Title    string   `json:"title"`
	Headings []string `json:"headings"`
	Features []string `json:"features"`
	Benefits []string `json:"benefits"`
	RawText  string   `json:"raw_text"`
}

// SearchHit is a ranked full-text match from the document store.
type SearchHit struct {
	ID      int64  `json:"id"`
	URL     string `json:"url"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}

// DocumentService represents the persistent, full-text indexed document store.
type DocumentService interface {
	// AddDocument stores the document and its index entry together.
	// ID and CreatedAt are assigned on success.
	AddDocument(ctx context.Context, doc *Document) error

	// BulkAdd stores each document in order and returns the assigned IDs.
	BulkAdd(ctx context.Context, docs []*Document) ([]int64, error)

	// Search returns the best matching documents first.
	// Returns EINVALID if the query cannot be parsed.
	Search(ctx context.Context, query string, limit int) ([]*SearchHit, error)

	// FindDocumentByID retrieves a document by ID.
	// Returns ENOTFOUND if document does not exist.
	FindDocumentByID(ctx context.Context, id int64) (*Document, error)
}
