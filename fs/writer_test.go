package fs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/gtmagent"
	"github.com/fwojciec/gtmagent/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
}

func TestArtifactName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		kind string
		want string
	}{
		{name: "simple kind", kind: "research", want: "research_20240309-140507.md"},
		{name: "spaces replaced", kind: "sales email", want: "sales_email_20240309-140507.md"},
		{name: "path separators replaced", kind: "../etc/passwd", want: "etc_passwd_20240309-140507.md"},
		{name: "empty kind", kind: "  ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, fs.ArtifactName(tt.kind, fixedNow()))
		})
	}
}

func TestArtifactWriter_Write(t *testing.T) {
	t.Parallel()

	t.Run("creates directory and writes file", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "outputs")
		w := &fs.ArtifactWriter{Dir: dir, Now: fixedNow}

		path, err := w.Write("research", "# Summary\n")

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "research_20240309-140507.md"), path)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "# Summary\n", string(content))
	})

	t.Run("same second overwrites", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := &fs.ArtifactWriter{Dir: dir, Now: fixedNow}

		first, err := w.Write("pitch", "first")
		require.NoError(t, err)
		second, err := w.Write("pitch", "second")
		require.NoError(t, err)

		assert.Equal(t, first, second)
		content, err := os.ReadFile(second)
		require.NoError(t, err)
		assert.Equal(t, "second", string(content))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("rejects empty kind", func(t *testing.T) {
		t.Parallel()

		w := fs.NewArtifactWriter(t.TempDir())

		_, err := w.Write("", "x")

		require.Error(t, err)
		assert.Equal(t, gtmagent.EINVALID, gtmagent.ErrorCode(err))
	})
}
