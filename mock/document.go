package mock

import (
	"context"

	"github.com/fwojciec/gtmagent"
)

var _ gtmagent.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of gtmagent.DocumentService.
type DocumentService struct {
	AddDocumentFn      func(ctx context.Context, doc *gtmagent.Document) error
	BulkAddFn          func(ctx context.Context, docs []*gtmagent.Document) ([]int64, error)
	SearchFn           func(ctx context.Context, query string, limit int) ([]*gtmagent.SearchHit, error)
	FindDocumentByIDFn func(ctx context.Context, id int64) (*gtmagent.Document, error)
}

func (s *DocumentService) AddDocument(ctx context.Context, doc *gtmagent.Document) error {
	return s.AddDocumentFn(ctx, doc)
}

func (s *DocumentService) BulkAdd(ctx context.Context, docs []*gtmagent.Document) ([]int64, error) {
	return s.BulkAddFn(ctx, docs)
}

func (s *DocumentService) Search(ctx context.Context, query string, limit int) ([]*gtmagent.SearchHit, error) {
	return s.SearchFn(ctx, query, limit)
}

func (s *DocumentService) FindDocumentByID(ctx context.Context, id int64) (*gtmagent.Document, error) {
	return s.FindDocumentByIDFn(ctx, id)
}
