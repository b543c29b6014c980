package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/gtmagent"
	"github.com/fwojciec/gtmagent/crawl"
	"github.com/fwojciec/gtmagent/fs"
	"github.com/fwojciec/gtmagent/gemini"
	"github.com/fwojciec/gtmagent/goquery"
	gtmhttp "github.com/fwojciec/gtmagent/http"
	"github.com/fwojciec/gtmagent/openai"
	"github.com/fwojciec/gtmagent/readability"
	"github.com/fwojciec/gtmagent/research"
	"github.com/fwojciec/gtmagent/search"
	gtmslog "github.com/fwojciec/gtmagent/slog"
	"github.com/fwojciec/gtmagent/sqlite"
	"github.com/fwojciec/gtmagent/trafilatura"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	// A missing .env file is fine; the environment may already be set.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Data directory holding the database and outputs. Set before calling
	// Run(). The --data-dir flag and GTM_AGENT_DATA_DIR take precedence.
	DataDir string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	DocumentService gtmagent.DocumentService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DataDir: defaultDataDir(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("gtmagent"),
		kong.Description("e& UAE B2B go-to-market research assistant."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'gtmagent --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	logger := newLogger(stderr, cli.Debug)

	dataDir := cli.DataDir
	if dataDir == "" {
		dataDir = m.DataDir
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory %q: %w", dataDir, err)
	}

	m.DB = sqlite.NewDB(filepath.Join(dataDir, "memory.sqlite3"))
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set GTM_AGENT_DATA_DIR to use a different data directory\n")
		return fmt.Errorf("failed to open database in %q: %w", dataDir, err)
	}
	defer m.Close()

	var documents gtmagent.DocumentService = sqlite.NewDocumentService(m.DB)
	if cli.Debug {
		documents = gtmslog.NewLoggingDocumentService(documents, logger)
	}
	m.DocumentService = documents
	deps.Documents = documents

	// One throttle for every outgoing page, robots.txt and sitemap request.
	throttle := gtmhttp.NewThrottle(gtmhttp.MinRequestInterval)
	robots := gtmhttp.NewRobotsGate(&http.Client{Timeout: gtmhttp.DefaultRobotsTimeout}, throttle, gtmagent.DefaultUserAgent)

	var fetcher gtmagent.Fetcher = gtmhttp.NewFetcher(
		gtmhttp.WithThrottle(throttle),
		gtmhttp.WithRobots(robots),
	)
	var sitemaps gtmagent.SitemapService = gtmhttp.NewSitemapService(nil, throttle, robots)
	if cli.Debug {
		fetcher = gtmslog.NewLoggingFetcher(fetcher, logger)
		sitemaps = gtmslog.NewLoggingSitemapService(sitemaps, logger)
	}

	extractor, err := newExtractor(cli.Extractor)
	if err != nil {
		return err
	}

	scraper, crawler := newPipeline(fetcher, extractor, sitemaps, logger)
	deps.Scraper = scraper
	deps.Crawler = crawler

	var searcher gtmagent.Searcher = search.NewAggregatorFromConfig(search.Config{
		BraveKey:   cli.BraveKey,
		BingKey:    cli.BingKey,
		SerpAPIKey: cli.SerpAPIKey,
		TavilyKey:  cli.TavilyKey,
	}, logger)
	if cli.Debug {
		searcher = gtmslog.NewLoggingSearcher(searcher, logger)
	}
	deps.Searcher = searcher

	if cmd == "research" || cmd == "generate" {
		generator, err := newGenerator(ctx, cli, stderr)
		if err != nil {
			return err
		}
		if cli.Debug {
			generator = gtmslog.NewLoggingGenerator(generator, logger)
		}

		deps.Researcher = &research.Researcher{
			Searcher:  searcher,
			Scraper:   scraper,
			Documents: documents,
			Generator: generator,
			Artifacts: fs.NewArtifactWriter(filepath.Join(dataDir, "outputs")),
			Logger:    logger,
		}
	}

	return kongCtx.Run(deps)
}

// newPipeline wires the scraper and crawler around a fetcher. Both retry
// transport failures with crawl.DefaultRetryDelays.
func newPipeline(fetcher gtmagent.Fetcher, extractor gtmagent.Extractor, sitemaps gtmagent.SitemapService, logger *slog.Logger) (*crawl.Scraper, *crawl.Crawler) {
	scraper := &crawl.Scraper{
		Fetcher:     fetcher,
		Extractor:   extractor,
		Brand:       goquery.NewBrandExtractor(),
		Logger:      logger,
		RetryDelays: crawl.DefaultRetryDelays(),
	}
	crawler := &crawl.Crawler{
		Fetcher:     fetcher,
		Scraper:     scraper,
		Sitemaps:    sitemaps,
		Logger:      logger,
		RetryDelays: crawl.DefaultRetryDelays(),
	}
	return scraper, crawler
}

// newLogger logs warnings to stderr, or everything with debug enabled.
func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// newExtractor returns the content extractor selected by name.
func newExtractor(name string) (gtmagent.Extractor, error) {
	switch name {
	case "", "landmark":
		return goquery.NewExtractor(), nil
	case "readability":
		return readability.NewExtractor(), nil
	case "trafilatura":
		return trafilatura.NewExtractor(), nil
	}
	return nil, gtmagent.Errorf(gtmagent.EINVALID, "unknown extractor %q", name)
}

// newGenerator selects the language model from the configured credentials.
// Without any credential the placeholder generator is used so that artifacts
// are still written.
func newGenerator(ctx context.Context, cli *CLI, stderr io.Writer) (gtmagent.Generator, error) {
	switch {
	case cli.OpenAIKey != "":
		return openai.NewGenerator(cli.OpenAIKey, cli.OpenAIBaseURL, cli.Model), nil
	case cli.GeminiKey != "":
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cli.GeminiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return gemini.NewGenerator(client, cli.Model), nil
	}
	fmt.Fprintln(stderr, "note: OPENAI_API_KEY and GEMINI_API_KEY are not set; writing placeholder outlines")
	return gtmagent.PlaceholderGenerator{}, nil
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".gtm_agent"
	}
	return filepath.Join(home, ".gtm_agent")
}
