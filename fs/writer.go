// Package fs provides file-based storage for generated artifacts.
package fs

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/fwojciec/gtmagent"
)

// TimestampLayout is the timestamp suffix of artifact file names.
const TimestampLayout = "20060102-150405"

// Ensure ArtifactWriter implements gtmagent.ArtifactWriter at compile time.
var _ gtmagent.ArtifactWriter = (*ArtifactWriter)(nil)

// ArtifactWriter writes markdown artifacts to a directory.
type ArtifactWriter struct {
	Dir string

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewArtifactWriter creates an ArtifactWriter for dir.
func NewArtifactWriter(dir string) *ArtifactWriter {
	return &ArtifactWriter{Dir: dir, Now: time.Now}
}

// Write stores content as {dir}/{kind}_{timestamp}.md and returns the path.
// A second write of the same kind within the same second replaces the first.
func (w *ArtifactWriter) Write(kind string, content string) (string, error) {
	name := ArtifactName(kind, w.now())
	if name == "" {
		return "", gtmagent.Errorf(gtmagent.EINVALID, "artifact kind required")
	}

	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(w.Dir, name)

	// Write to a temporary file first so readers never see a partial artifact.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0644); err != nil {
		return "", err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", err
	}
	return path, nil
}

func (w *ArtifactWriter) now() time.Time {
	if w.Now == nil {
		return time.Now()
	}
	return w.Now()
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// ArtifactName returns the file name for an artifact of kind created at t.
// Characters that are unsafe in file names are replaced with underscores.
// Returns "" when kind has no usable characters.
func ArtifactName(kind string, t time.Time) string {
	kind = strings.Trim(unsafeChars.ReplaceAllString(strings.TrimSpace(kind), "_"), "_.")
	if kind == "" {
		return ""
	}
	return kind + "_" + t.Format(TimestampLayout) + ".md"
}
