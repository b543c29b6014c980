package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// parseRFC3339 parses an RFC3339 formatted timestamp string.
// Returns an error if parsing fails with a descriptive message including the field name.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// nullString stores empty strings as NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// isQueryError reports whether err is SQLite rejecting an FTS5 MATCH expression.
func isQueryError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "fts5:") ||
		strings.Contains(msg, "syntax error") ||
		strings.Contains(msg, "no such column") ||
		strings.Contains(msg, "unterminated string")
}
