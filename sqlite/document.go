package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/gtmagent"
)

// DefaultSearchLimit is used when Search is called with a limit of zero or less.
const DefaultSearchLimit = 10

// Compile-time interface verification.
var _ gtmagent.DocumentService = (*DocumentService)(nil)

// DocumentService implements gtmagent.DocumentService using SQLite FTS5.
type DocumentService struct {
	db *DB
	// Now returns the persistence timestamp. Defaults to time.Now.
	Now func() time.Time
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db, Now: time.Now}
}

// AddDocument inserts the document row and its index entry in one transaction.
func (s *DocumentService) AddDocument(ctx context.Context, doc *gtmagent.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	source := doc.Source
	if source == "" {
		source = gtmagent.DefaultSource
	}
	createdAt := s.Now().UTC().Truncate(time.Second)

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO docs (url, title, source, tags, headings, created_at, text)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, nullString(doc.URL), doc.Title, source, nullString(doc.Tags),
		strings.Join(doc.Headings, "\n"), createdAt.Format(time.RFC3339), doc.Text)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("read document id: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO docs_fts (rowid, title, text, url) VALUES (?, ?, ?, ?)
	`, id, doc.Title, doc.Text, doc.URL); err != nil {
		return fmt.Errorf("index document: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit document: %w", err)
	}

	doc.ID = id
	doc.Source = source
	doc.CreatedAt = createdAt
	return nil
}

// BulkAdd adds each document in order and returns the assigned IDs.
// It stops at the first failure and returns the IDs assigned so far.
func (s *DocumentService) BulkAdd(ctx context.Context, docs []*gtmagent.Document) ([]int64, error) {
	ids := make([]int64, 0, len(docs))
	for _, doc := range docs {
		if err := s.AddDocument(ctx, doc); err != nil {
			return ids, err
		}
		ids = append(ids, doc.ID)
	}
	return ids, nil
}

// Search runs an FTS5 MATCH query ranked by bm25, best match first.
// The snippet comes from the text column with matches wrapped in brackets.
func (s *DocumentService) Search(ctx context.Context, query string, limit int) ([]*gtmagent.SearchHit, error) {
	if strings.TrimSpace(query) == "" {
		return nil, gtmagent.Errorf(gtmagent.EINVALID, "empty search query")
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT d.id, d.url, d.title, snippet(docs_fts, 1, '[', ']', ' … ', 10)
		FROM docs_fts
		JOIN docs d ON d.id = docs_fts.rowid
		WHERE docs_fts MATCH ?
		ORDER BY bm25(docs_fts)
		LIMIT ?
	`, query, limit)
	if err != nil {
		return nil, searchError(query, err)
	}
	defer rows.Close()

	var hits []*gtmagent.SearchHit
	for rows.Next() {
		var hit gtmagent.SearchHit
		var url sql.NullString
		if err := rows.Scan(&hit.ID, &url, &hit.Title, &hit.Snippet); err != nil {
			return nil, err
		}
		hit.URL = url.String
		hits = append(hits, &hit)
	}
	if err := rows.Err(); err != nil {
		return nil, searchError(query, err)
	}

	return hits, nil
}

// FindDocumentByID retrieves a document by ID.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id int64) (*gtmagent.Document, error) {
	var doc gtmagent.Document
	var url, tags sql.NullString
	var headings, createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, url, title, source, tags, headings, created_at, text
		FROM docs
		WHERE id = ?
	`, id).Scan(&doc.ID, &url, &doc.Title, &doc.Source, &tags, &headings, &createdAt, &doc.Text)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, gtmagent.Errorf(gtmagent.ENOTFOUND, "document %d not found", id)
	}
	if err != nil {
		return nil, err
	}

	doc.URL = url.String
	doc.Tags = tags.String
	if headings != "" {
		doc.Headings = strings.Split(headings, "\n")
	}
	doc.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &doc, nil
}

func searchError(query string, err error) error {
	if isQueryError(err) {
		return gtmagent.Errorf(gtmagent.EINVALID, "invalid search query %q: %v", query, err)
	}
	return err
}
