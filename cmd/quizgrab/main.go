package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/quizgrab"
	"github.com/fwojciec/quizgrab/crawl"
	"github.com/fwojciec/quizgrab/fs"
	"github.com/fwojciec/quizgrab/goquery"
	"github.com/fwojciec/quizgrab/htmltomarkdown"
	quizhttp "github.com/fwojciec/quizgrab/http"
	"github.com/fwojciec/quizgrab/rod"
	quizslog "github.com/fwojciec/quizgrab/slog"
	"github.com/fwojciec/quizgrab/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("quizgrab"),
		kong.Description("Scrape Quiz Maker tests into normalized JSON"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	logLevel := slog.LevelWarn
	if cli.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	timeout := cli.Timeout
	if timeout == 0 {
		timeout = 20 * time.Second
	}

	httpFetcher := quizhttp.NewFetcher(quizhttp.WithTimeout(timeout))

	// Discovery: the category walk by default, the sitemap when include
	// patterns are given.
	source, err := newSource(cli, httpFetcher)
	if err != nil {
		return err
	}
	deps.Source = quizslog.NewLoggingSource(source, logger)

	if cli.Preview {
		cmd := &FetchCmd{URL: cli.URL, Preview: true}
		return cmd.Run(deps)
	}

	// Quiz pages render client-side; headless Chrome is the default.
	var quizFetcher quizgrab.Fetcher = httpFetcher
	if !cli.Static {
		rodFetcher, err := rod.NewFetcher(rod.WithReadyTimeout(timeout))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed (or pass --static)")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer rodFetcher.Close()
		quizFetcher = rod.NewLoggingFetcher(rodFetcher, logger)
	}

	var store quizgrab.TestStore = fs.NewJSONStore(cli.Out)
	if cli.Markdown != "" {
		store = newMarkdownStore(store, fs.NewMarkdownWriter(cli.Markdown, htmltomarkdown.NewConverter()), logger)
	}
	deps.Store = store

	var archive quizgrab.TestService
	if cli.DB != "" {
		db := sqlite.NewDB(cli.DB)
		if err := db.Open(); err != nil {
			return fmt.Errorf("failed to open archive: %w", err)
		}
		defer db.Close()
		archive = sqlite.NewTestService(db)
	}

	deps.Crawler = &crawl.Crawler{
		Source:      deps.Source,
		Fetcher:     quizFetcher,
		Parser:      quizslog.NewLoggingParser(goquery.NewParser(), logger),
		Store:       store,
		Archive:     archive,
		Logger:      logger,
		Limit:       cli.Limit,
		Concurrency: cli.Concurrency,
	}

	cmd := &FetchCmd{URL: cli.URL}
	return cmd.Run(deps)
}

// newSource builds the quiz URL source for the run.
func newSource(cli *CLI, httpFetcher *quizhttp.Fetcher) (quizgrab.QuizSource, error) {
	if len(cli.Include) == 0 {
		return &crawl.CategorySource{
			Fetcher: httpFetcher,
			Limiter: crawl.NewDomainLimiter(1.0),
		}, nil
	}

	filter := &quizgrab.URLFilter{}
	for _, pattern := range cli.Include {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, quizgrab.Errorf(quizgrab.EINVALID, "invalid include pattern %q: %v", pattern, err)
		}
		filter.Include = append(filter.Include, re)
	}
	return quizhttp.NewSitemapSource(nil, filter), nil
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Preview     bool          `short:"p" help:"List discovered quiz URLs without fetching them"`
	Limit       int           `short:"n" default:"0" help:"Maximum quizzes to scrape (0 = all)"`
	Concurrency int           `short:"c" default:"3" help:"Concurrent fetch limit"`
	Timeout     time.Duration `short:"t" default:"20s" help:"Fetch timeout per page"`
	Include     []string      `help:"Discover quiz URLs from the sitemap, keeping URLs matching these patterns"`
	DB          string        `help:"Record scraped tests in a SQLite archive at this path"`
	Markdown    string        `help:"Also write per-test markdown study sheets to this directory"`
	Static      bool          `help:"Fetch quiz pages over plain HTTP instead of headless Chrome"`
	Verbose     bool          `short:"v" help:"Enable debug logging"`
	URL         string        `arg:"" required:"" help:"Category or site URL to scrape"`
	Out         string        `arg:"" optional:"" default:"tests.json" help:"Output JSON file"`
}
