package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/Maikl76/legislativa"
	"github.com/Maikl76/legislativa/ask"
	"github.com/Maikl76/legislativa/fs"
	"github.com/Maikl76/legislativa/gemini"
	"github.com/Maikl76/legislativa/goquery"
	lhttp "github.com/Maikl76/legislativa/http"
	"github.com/Maikl76/legislativa/openrouter"
	"github.com/Maikl76/legislativa/pdf"
	"github.com/Maikl76/legislativa/scrape"
	lslog "github.com/Maikl76/legislativa/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A missing .env file is not an error.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Services for end-to-end testing. When nil, Run builds the real ones.
	Fetcher   legislativa.Fetcher
	Completer legislativa.Completer

	// Library is the catalog built by the last Run.
	Library *scrape.Library

	logFile *os.File
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Close releases resources opened by Run.
func (m *Main) Close() error {
	if m.logFile != nil {
		return m.logFile.Close()
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
		kong.Name("legislativa"),
		kong.Description("Track changes in legislation PDFs and answer questions about them."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'legislativa --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	defer m.Close()

	cmd := kongCtx.Selected().Name

	logOut := stderr
	if cli.LogFile != "" {
		f, err := os.OpenFile(cli.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file %q: %w", cli.LogFile, err)
		}
		m.logFile = f
		logOut = io.MultiWriter(stderr, f)
	}
	logger := lslog.NewLogger(logOut, cli.LogLevel)
	deps.Logger = logger

	history := fs.NewHistoryStore(cli.HistoryDir)
	if err := history.Open(); err != nil {
		return fmt.Errorf("failed to create history directory %q: %w", cli.HistoryDir, err)
	}

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = lhttp.NewFetcher(
			lhttp.WithUserAgent(cli.UserAgent),
			lhttp.WithMaxBytes(cli.MaxDownload<<20),
		)
	}
	if cli.RateLimit > 0 {
		fetcher = scrape.Throttle(fetcher, scrape.NewHostLimiter(cli.RateLimit))
	}
	fetcher = lslog.NewLoggingFetcher(fetcher, logger)

	scraper := &scrape.Scraper{
		Fetcher:     fetcher,
		Links:       goquery.NewPDFLinkFinder(),
		Extractor:   pdf.NewExtractor(fetcher),
		History:     lslog.NewLoggingHistoryStore(history, logger),
		Concurrency: cli.Concurrency,
		Logger:      logger,
	}

	m.Library = scrape.NewLibrary(fs.NewSourceList(cli.SourcesFile), scraper)
	m.Library.Logger = logger
	deps.Catalog = m.Library

	if cmd == "scrape" {
		m.Library.Progress = func(r scrape.SourceResult) {
			fmt.Fprintf(stdout, "  %s: %d documents (%s)\n", r.URL, r.Documents, r.Duration.Round(time.Millisecond))
		}
	}

	if cmd == "serve" || cmd == "ask" {
		completer := m.Completer
		if completer == nil {
			completer, err = newCompleter(ctx, cli, stderr)
			if err != nil {
				return err
			}
		}

		gateway := ask.NewGateway(m.Library, lslog.NewLoggingCompleter(completer, logger))
		gateway.Concurrency = cli.AskConcurrency
		gateway.Logger = logger
		deps.Asker = gateway
	}

	return kongCtx.Run(deps)
}

// newCompleter builds the completion client selected by --provider.
func newCompleter(ctx context.Context, cli *CLI, stderr io.Writer) (legislativa.Completer, error) {
	switch cli.Provider {
	case "gemini":
		if cli.GeminiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return nil, fmt.Errorf("GEMINI_API_KEY not set")
		}
		client, err := gemini.NewClient(ctx, cli.GeminiKey)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return gemini.NewCompleter(client, cli.Model), nil
	default:
		if cli.OpenRouterKey == "" {
			fmt.Fprintln(stderr, "OPENROUTER_API_KEY environment variable not set. Get an API key at https://openrouter.ai/keys")
			return nil, fmt.Errorf("OPENROUTER_API_KEY not set")
		}
		return openrouter.NewClient(cli.OpenRouterKey, openrouter.WithModel(cli.Model)), nil
	}
}
