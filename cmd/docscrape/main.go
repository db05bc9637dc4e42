package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/fwojciec/docscrape"
	"github.com/fwojciec/docscrape/crawl"
	"github.com/fwojciec/docscrape/fs"
	"github.com/fwojciec/docscrape/goquery"
	"github.com/fwojciec/docscrape/htmltomarkdown"
	dshttp "github.com/fwojciec/docscrape/http"
	dsslog "github.com/fwojciec/docscrape/slog"
)

// urlPrompt is shown when no URL argument is given.
const urlPrompt = "Enter the URL of the documentation to scrape: "

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
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
// When args carry no URL, one is read from stdin after a prompt.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docscrape"),
		kong.Description("Scrape a documentation site into one combined markdown file"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	rawURL := cli.URL
	if rawURL == "" {
		rawURL, err = promptForURL(stdin, stdout)
		if err != nil {
			return err
		}
	}

	cfg := docscrape.NewConfig(docscrape.NormalizeURL(rawURL))
	cfg.OutputRoot = cli.Output
	cfg.Timeout = cli.Timeout
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbose)
	deps := NewDependencies(ctx, cfg, stdout, stderr, logger)

	cmd := &ScrapeCmd{Config: cfg}
	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Output  string        `short:"o" default:"Outputs" help:"Root directory for scraped output"`
	Timeout time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	Verbose bool          `short:"v" help:"Log every fetch and write"`
	URL     string        `arg:"" optional:"" help:"Documentation URL to scrape (prompted for if omitted)"`
}

// promptForURL asks for a URL on stdout and reads one line from stdin.
func promptForURL(stdin io.Reader, stdout io.Writer) (string, error) {
	fmt.Fprint(stdout, urlPrompt)

	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read URL: %w", err)
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return "", docscrape.Errorf(docscrape.EINVALID, "no URL provided")
	}
	return line, nil
}

// newLogger returns a slog.Logger backed by charmbracelet/log on stderr.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	handler := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           log.InfoLevel,
	})
	if verbose {
		handler.SetLevel(log.DebugLevel)
	}
	return slog.New(handler)
}

// NewDependencies wires the production services for cfg.
func NewDependencies(ctx context.Context, cfg *docscrape.Config, stdout, stderr io.Writer, logger *slog.Logger) *Dependencies {
	fetcher := dsslog.NewLoggingFetcher(dshttp.NewFetcher(dshttp.WithTimeout(cfg.Timeout)), logger)
	writer := fs.NewWriter(cfg.OutputDir(), cfg.BaseURL)

	return &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Discoverer: &crawl.Discoverer{
			Fetcher: fetcher,
			Links:   goquery.NewLinkExtractor(),
		},
		Scraper: &crawl.Scraper{
			Converter: &crawl.PageConverter{
				Fetcher:   fetcher,
				Content:   goquery.NewContentFinder(),
				Converter: htmltomarkdown.NewConverter(),
			},
			Pages: dsslog.NewLoggingPageWriter(writer, logger),
		},
		Aggregator: fs.NewAggregator(writer, logger),
	}
}
