package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	main "github.com/fwojciec/gtmagent/cmd/gtmagent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allCommands = []string{"search", "save", "mem", "get", "crawl-site", "scrape", "research", "generate"}

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()
	for _, cmd := range allCommands {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestCLI_ParsesFlags(t *testing.T) {
	t.Parallel()

	t.Run("crawl-site defaults", func(t *testing.T) {
		t.Parallel()

		cli := &main.CLI{}
		parser, err := kong.New(cli, kong.Exit(func(int) {}))
		require.NoError(t, err)

		_, err = parser.Parse([]string{"crawl-site", "https://example.com"})

		require.NoError(t, err)
		assert.Equal(t, "https://example.com", cli.CrawlSite.URL)
		assert.Equal(t, 10, cli.CrawlSite.MaxPages)
		assert.True(t, cli.CrawlSite.SameDomainOnly)
		assert.False(t, cli.CrawlSite.Sitemap)
		assert.Equal(t, "landmark", cli.Extractor)
	})

	t.Run("crawl-site can leave the domain", func(t *testing.T) {
		t.Parallel()

		cli := &main.CLI{}
		parser, err := kong.New(cli, kong.Exit(func(int) {}))
		require.NoError(t, err)

		_, err = parser.Parse([]string{"crawl-site", "https://example.com", "--no-same-domain-only", "--max-pages", "3"})

		require.NoError(t, err)
		assert.False(t, cli.CrawlSite.SameDomainOnly)
		assert.Equal(t, 3, cli.CrawlSite.MaxPages)
	})

	t.Run("generate collects context entries", func(t *testing.T) {
		t.Parallel()

		cli := &main.CLI{}
		parser, err := kong.New(cli, kong.Exit(func(int) {}))
		require.NoError(t, err)

		_, err = parser.Parse([]string{"generate", "event-agenda", "-c", "event=GITEX", "-c", "tracks=AI"})

		require.NoError(t, err)
		assert.Equal(t, "event-agenda", cli.Generate.Kind)
		assert.Equal(t, map[string]string{"event": "GITEX", "tracks": "AI"}, cli.Generate.Context)
	})

	t.Run("research default page count", func(t *testing.T) {
		t.Parallel()

		cli := &main.CLI{}
		parser, err := kong.New(cli, kong.Exit(func(int) {}))
		require.NoError(t, err)

		_, err = parser.Parse([]string{"research", "uae sd-wan"})

		require.NoError(t, err)
		assert.Equal(t, 6, cli.Research.MaxPages)
	})

	t.Run("rejects unknown extractor", func(t *testing.T) {
		t.Parallel()

		cli := &main.CLI{}
		parser, err := kong.New(cli, kong.Exit(func(int) {}))
		require.NoError(t, err)

		_, err = parser.Parse([]string{"--extractor", "magic", "mem", "x"})

		require.Error(t, err)
	})
}

func TestMain_Run_HelpShowsKongOutput(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.DataDir = t.TempDir()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"--help"}, stdout, stderr)
	require.NoError(t, err)

	helpOutput := stdout.String()
	for _, cmd := range allCommands {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
	assert.Contains(t, helpOutput, "Usage:")
	assert.Contains(t, helpOutput, "Flags:")
}

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.DataDir = t.TempDir()

	err := m.Run(context.Background(), []string{}, &bytes.Buffer{}, &bytes.Buffer{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestMain_Run_HelpWithoutCreatingDB(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "data")
	m := main.NewMain()
	m.DataDir = dir

	err := m.Run(context.Background(), []string{"--help"}, &bytes.Buffer{}, &bytes.Buffer{})

	require.NoError(t, err)
	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestMain_Run_Memory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	t.Run("mem on empty store", func(t *testing.T) {
		m := main.NewMain()
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"--data-dir", dir, "mem", "cloud"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No matches.")
		assert.FileExists(t, filepath.Join(dir, "memory.sqlite3"))
	})

	t.Run("get missing document", func(t *testing.T) {
		m := main.NewMain()
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"--data-dir", dir, "get", "42"}, &bytes.Buffer{}, stderr)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "document 42 not found")
	})
}

// Not parallel: clears model credentials from the environment.
func TestMain_Run_GenerateWithoutCredentials(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	dir := t.TempDir()
	m := main.NewMain()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"--data-dir", dir, "generate", "partner-playbook", "-c", "partner=Microsoft"}, stdout, stderr)

	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "placeholder")
	assert.Contains(t, stdout.String(), "Wrote ")

	matches, err := filepath.Glob(filepath.Join(dir, "outputs", "partner-playbook_*.md"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	content, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.Contains(t, string(content), "Task: partner-playbook")
	assert.Contains(t, string(content), "partner: Microsoft")
}
