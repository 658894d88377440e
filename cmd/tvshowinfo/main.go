package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/Belphemur/TVShowInfo/internal/client"
	"github.com/Belphemur/TVShowInfo/internal/config"
	"github.com/Belphemur/TVShowInfo/internal/metrics"
	"github.com/Belphemur/TVShowInfo/internal/notifier"
	"github.com/Belphemur/TVShowInfo/internal/reporting"
	"github.com/Belphemur/TVShowInfo/internal/services"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("tvshowinfo", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	config.RegisterFlags(fs)
	fs.Usage = func() { printUsage(fs, stderr) }

	if len(args) == 0 {
		printUsage(fs, stdout)
		return exitOK
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to load configuration: %v\n", err)
		return exitError
	}

	webhooks := notifier.ParseWebhookURLs(cfg.Webhook)
	if cfg.Show == "" || len(webhooks) == 0 {
		fmt.Fprintln(stderr, "Error: both --show and --webhook are required")
		printUsage(fs, stderr)
		return exitUsage
	}

	runID := uuid.NewString()
	config.WithRunID(runID)
	logger := config.GetLogger()

	flush, err := reporting.Init(cfg.SentryDSN, version)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to initialise error reporting, continuing without it")
	}
	defer flush()

	logger.Info().
		Str("version", version).
		Str("show", cfg.Show).
		Int("webhooks", len(webhooks)).
		Strs("sources", cfg.Sources.Order).
		Msg("Application started with configuration")

	httpClient := client.NewHTTPClient(cfg, runID)
	sources, err := client.NewSources(cfg.Sources.Order, httpClient, cfg)
	if err != nil {
		logger.Error().Err(err).Msg("Invalid source configuration")
		return exitError
	}

	announcer := services.NewAnnouncer(
		services.NewShowFinder(sources),
		notifier.NewPublisher(httpClient, webhooks),
	)
	for _, result := range announcer.Announce(ctx, cfg.Show) {
		fmt.Fprintln(stdout, result.OK, result.Body)
	}

	if cfg.Metrics.PushgatewayURL != "" {
		if err := metrics.Push(cfg.Metrics.PushgatewayURL, cfg.Metrics.Job, nil); err != nil {
			logger.Warn().Err(err).Msg("Failed to push metrics")
		}
	}

	return exitOK
}

func printUsage(fs *pflag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Usage: tvshowinfo --show <name> --webhook <url[,url...]>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Looks a TV show up and posts its description to Slack incoming webhooks.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, fs.FlagUsages())
}
