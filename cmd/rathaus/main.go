package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/rathaus/contact"
	"github.com/fwojciec/rathaus/csv"
	"github.com/fwojciec/rathaus/gemini"
	"github.com/fwojciec/rathaus/goquery"
	rathaushttp "github.com/fwojciec/rathaus/http"
	"github.com/fwojciec/rathaus/pipeline"
	"github.com/fwojciec/rathaus/resolve"
	rathausslog "github.com/fwojciec/rathaus/slog"
	"github.com/fwojciec/rathaus/trafilatura"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
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
type Main struct {
	// Gemini model name. Set before calling Run().
	Model string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Model: defaultModel(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("rathaus"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'rathaus --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Both commands take the CSV file as their only argument.
	file := cli.Resolve.File
	if file == "" {
		file = cli.Contacts.File
	}
	store := csv.NewStore(file)

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	// One limiter shared by every Gemini-backed service of the process.
	limiter := rate.NewLimiter(rate.Limit(requestsPerSecond), 1)

	completer := rathausslog.NewLoggingCompleter(
		gemini.NewCompleter(client, gemini.WithModel(m.Model), gemini.WithLimiter(limiter)),
		logger,
	)
	fetcher := rathausslog.NewLoggingFetcher(rathaushttp.NewFetcher(), logger)
	texts := trafilatura.NewExtractor()

	deps.Driver = &pipeline.Driver{
		Store: store,
		Resolver: &resolve.Resolver{
			Completer: completer,
			Verifier: &resolve.Verifier{
				Fetcher:   fetcher,
				Texts:     texts,
				Completer: completer,
			},
		},
		Finder: &contact.Finder{
			Fetcher: fetcher,
			Links:   goquery.NewExtractor(),
			Filter:  &contact.Filter{Completer: completer},
			Content: &contact.Aggregator{
				Fetcher: fetcher,
				Texts:   texts,
				Logger:  logger,
			},
			Completer: completer,
			Contacts: gemini.NewContactExtractor(client,
				gemini.WithExtractorModel(m.Model),
				gemini.WithExtractorLimiter(limiter),
			),
			Logger: logger,
		},
		Logger: logger,
	}

	return kongCtx.Run(deps)
}

// requestsPerSecond is the client-side QPS cap on Gemini calls.
const requestsPerSecond = 1.0

func defaultModel() string {
	if model := os.Getenv("RATHAUS_MODEL"); model != "" {
		return model
	}
	return gemini.DefaultModel
}
