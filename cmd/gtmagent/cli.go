package main

import (
	"context"
	"io"

	"github.com/fwojciec/gtmagent"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Documents  gtmagent.DocumentService
	Searcher   gtmagent.Searcher
	Scraper    gtmagent.Scraper
	Crawler    gtmagent.Crawler
	Researcher gtmagent.Researcher
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Debug     bool   `help:"Log every request with its timing to stderr"`
	Extractor string `enum:"landmark,readability,trafilatura" default:"landmark" help:"Content extractor (${enum})"`
	DataDir   string `name:"data-dir" env:"GTM_AGENT_DATA_DIR" help:"Directory for the memory database and outputs (default ~/.gtm_agent)"`
	Model     string `env:"GTM_AGENT_MODEL" help:"Language model name (default depends on provider)"`

	OpenAIKey     string `name:"openai-api-key" env:"OPENAI_API_KEY" hidden:""`
	OpenAIBaseURL string `name:"openai-base-url" env:"OPENAI_BASE_URL" hidden:""`
	GeminiKey     string `name:"gemini-api-key" env:"GEMINI_API_KEY" hidden:""`
	BraveKey      string `name:"brave-api-key" env:"BRAVE_SEARCH_API_KEY" hidden:""`
	BingKey       string `name:"bing-api-key" env:"BING_SEARCH_API_KEY" hidden:""`
	SerpAPIKey    string `name:"serpapi-api-key" env:"SERPAPI_API_KEY" hidden:""`
	TavilyKey     string `name:"tavily-api-key" env:"TAVILY_API_KEY" hidden:""`

	Search    SearchCmd    `cmd:"" help:"Search the web across providers and print results"`
	Save      SaveCmd      `cmd:"" help:"Scrape a URL and save it to memory"`
	Mem       MemCmd       `cmd:"" help:"Full-text search of saved documents"`
	Get       GetCmd       `cmd:"" help:"Print a saved document"`
	CrawlSite CrawlSiteCmd `cmd:"" name:"crawl-site" help:"Crawl a site and save every page to memory"`
	Scrape    ScrapeCmd    `cmd:"" help:"Scrape a URL and print it as JSON without saving"`
	Research  ResearchCmd  `cmd:"" help:"Research a topic and write a summary"`
	Generate  GenerateCmd  `cmd:"" help:"Generate a branded artifact from key=value context"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query      string `arg:"" help:"Search query"`
	MaxResults int    `short:"n" default:"10" help:"Maximum number of results"`
}

// SaveCmd is the "save" subcommand.
type SaveCmd struct {
	URL string `arg:"" help:"Page URL"`
}

// MemCmd is the "mem" subcommand.
type MemCmd struct {
	Query string `arg:"" help:"Full-text query"`
	Limit int    `short:"l" default:"10" help:"Maximum number of hits"`
}

// GetCmd is the "get" subcommand.
type GetCmd struct {
	ID int64 `arg:"" help:"Document ID"`
}

// CrawlSiteCmd is the "crawl-site" subcommand.
type CrawlSiteCmd struct {
	URL            string `arg:"" help:"Seed URL"`
	MaxPages       int    `short:"m" default:"10" help:"Maximum number of pages"`
	SameDomainOnly bool   `default:"true" negatable:"" help:"Stay on the seed URL's host"`
	Sitemap        bool   `help:"Also seed the crawl from the site's sitemaps"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URL string `arg:"" help:"Page URL"`
}

// ResearchCmd is the "research" subcommand.
type ResearchCmd struct {
	Query    string `arg:"" help:"Research topic"`
	MaxPages int    `short:"m" default:"6" help:"Maximum number of pages to read"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	Kind    string            `arg:"" help:"Artifact kind, e.g. messaging-house or event-agenda"`
	Context map[string]string `short:"c" help:"Context entry as key=value (repeatable)"`
}
