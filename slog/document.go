package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/gtmagent"
)

// Ensure LoggingDocumentService implements gtmagent.DocumentService.
var _ gtmagent.DocumentService = (*LoggingDocumentService)(nil)

// LoggingDocumentService wraps a DocumentService with debug logging.
type LoggingDocumentService struct {
	next   gtmagent.DocumentService
	logger *slog.Logger
}

// NewLoggingDocumentService creates a new LoggingDocumentService.
func NewLoggingDocumentService(next gtmagent.DocumentService, logger *slog.Logger) *LoggingDocumentService {
	return &LoggingDocumentService{next: next, logger: logger}
}

// AddDocument delegates to the wrapped service and logs the operation.
func (s *LoggingDocumentService) AddDocument(ctx context.Context, doc *gtmagent.Document) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("add document",
			"url", doc.URL,
			"id", doc.ID,
			"bytes", len(doc.Text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.AddDocument(ctx, doc)
}

// BulkAdd delegates to the wrapped service and logs the operation.
func (s *LoggingDocumentService) BulkAdd(ctx context.Context, docs []*gtmagent.Document) (ids []int64, err error) {
	defer func(begin time.Time) {
		s.logger.Info("bulk add",
			"count", len(ids),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.BulkAdd(ctx, docs)
}

// Search delegates to the wrapped service and logs the operation.
func (s *LoggingDocumentService) Search(ctx context.Context, query string, limit int) (hits []*gtmagent.SearchHit, err error) {
	defer func(begin time.Time) {
		s.logger.Info("memory search",
			"query", query,
			"count", len(hits),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, query, limit)
}

// FindDocumentByID delegates to the wrapped service.
func (s *LoggingDocumentService) FindDocumentByID(ctx context.Context, id int64) (*gtmagent.Document, error) {
	return s.next.FindDocumentByID(ctx, id)
}
