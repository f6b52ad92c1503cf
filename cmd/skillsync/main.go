package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/skillsync"
	"github.com/fwojciec/skillsync/fs"
	"github.com/fwojciec/skillsync/goldmark"
	skillhttp "github.com/fwojciec/skillsync/http"
	"github.com/fwojciec/skillsync/lines"
	skillslog "github.com/fwojciec/skillsync/slog"
	"github.com/fwojciec/skillsync/update"
	"github.com/fwojciec/skillsync/yaml"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher overrides the HTTP fetcher. Set before calling Run().
	Fetcher skillsync.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
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
		kong.Name("skillsync"),
		kong.Description("Sync skill documents with the user-facing sections of upstream READMEs"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	for _, arg := range args {
		if arg == "--help" || arg == "-h" {
			_, _ = parser.Parse(args)
			return nil
		}
	}
	if len(args) > 0 && args[0] == "help" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Load targets
	if cli.Config != "" {
		deps.Targets, err = yaml.LoadTargets(cli.Config)
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", skillsync.ErrorMessage(err))
			return err
		}
	} else {
		deps.Targets = []skillsync.Target{skillsync.DefaultTarget()}
	}

	// Wire services
	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = skillhttp.NewFetcher(
			skillhttp.WithTimeout(cli.Timeout),
			skillhttp.WithRateLimit(cli.RateLimit),
		)
	}
	defer fetcher.Close()

	deps.Updater = &update.Updater{
		Fetcher: skillslog.NewLoggingFetcher(fetcher, logger),
		Store:   skillslog.NewLoggingStore(fs.NewStore(cli.Dir), logger),
		Codecs: map[skillsync.Format]skillsync.Codec{
			skillsync.FormatGoldmark: goldmark.NewCodec(),
			skillsync.FormatLines:    lines.NewCodec(),
		},
		Logger: logger,
	}

	return kongCtx.Run(deps)
}
