package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/Maikl76/legislativa"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Catalog legislativa.CatalogService
	Asker   legislativa.Asker
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	SourcesFile string `name:"sources" env:"SOURCES_FILE" default:"sources.txt" help:"File listing source page URLs, one per line"`
	HistoryDir  string `name:"history-dir" env:"HISTORY_DIR" default:"historie_pdfs" help:"Directory holding the last text snapshot of each document"`
	LogLevel    string `name:"log-level" env:"LOG_LEVEL" default:"info" help:"Log level (debug, info, warn, error)"`
	LogFile     string `name:"log-file" env:"LOG_FILE" help:"Also append logs to this file"`

	Concurrency int     `name:"concurrency" env:"SCRAPE_CONCURRENCY" default:"1" help:"Concurrent PDF downloads per source"`
	RateLimit   float64 `name:"rate-limit" env:"SCRAPE_RATE_LIMIT" default:"0" help:"Requests per second per host for pages and PDFs (0 disables)"`
	UserAgent   string  `name:"user-agent" env:"SCRAPE_USER_AGENT" default:"legislativa/1.0" help:"User-Agent header sent when scraping"`
	MaxDownload int64   `name:"max-download-mb" env:"SCRAPE_MAX_DOWNLOAD_MB" default:"64" help:"Largest page or PDF accepted, in MiB"`

	Provider       string `name:"provider" env:"LLM_PROVIDER" default:"openrouter" enum:"openrouter,gemini" help:"Completion API (openrouter, gemini)"`
	Model          string `name:"model" env:"LLM_MODEL" help:"Model identifier for the completion API"`
	OpenRouterKey  string `name:"openrouter-key" env:"OPENROUTER_API_KEY" help:"OpenRouter API key"`
	GeminiKey      string `name:"gemini-key" env:"GEMINI_API_KEY" help:"Gemini API key"`
	AskConcurrency int    `name:"ask-concurrency" env:"ASK_CONCURRENCY" default:"1" help:"Concurrent completion requests per question"`

	Serve  ServeCmd  `cmd:"" help:"Load the catalog and serve the HTTP API"`
	Scrape ScrapeCmd `cmd:"" help:"Scrape all sources once and print each document's status"`
	Ask    AskCmd    `cmd:"" help:"Load the catalog and answer one question"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Host string `env:"HOST" default:"" help:"Interface to listen on"`
	Port string `short:"p" env:"PORT" default:"5000" help:"Port to listen on"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct{}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question string `arg:"" help:"Question about the scraped legislation"`
}
