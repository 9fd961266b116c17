package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/gamedex/gamedex/internal/cli"
	"github.com/gamedex/gamedex/internal/config"
	"github.com/gamedex/gamedex/internal/db"
	"github.com/gamedex/gamedex/internal/logging"
)

func runWatch(args []string) int {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")
	manifestPath := fs.String("manifest", "", "Path to a JSON manifest of sources")
	interval := fs.Duration("interval", 15*time.Minute, "Time between ingestion runs")
	timeout := fs.Duration("timeout", 10*time.Second, "Database connect timeout")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *interval <= 0 {
		fmt.Fprintln(os.Stderr, "--interval must be positive")
		return 2
	}

	if envLoader != nil {
		if _, err := envLoader.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	sources, err := resolveSources(*manifestPath, fs.Args(), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 2
	}

	logger, err := logging.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		return 1
	}

	dbCtx, dbCancel := context.WithTimeout(context.Background(), *timeout)
	defer dbCancel()

	pool, err := db.NewPool(dbCtx, cfg)
	if err != nil {
		logger.Error().Err(err).Msg("watch failed to connect to database")
		fmt.Fprintf(os.Stderr, "Failed to connect to database: %v\n", err)
		return 1
	}
	defer pool.Close()

	svc, err := buildIngestService(pool, cfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("watch setup failed")
		fmt.Fprintf(os.Stderr, "Watch setup failed: %v\n", err)
		return 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		<-sigCh
		cancel()
	}()

	runOnce := func() {
		summary := svc.Run(ctx, sources)
		logger.Info().
			Int("sources_read", summary.SourcesRead).
			Int("posts_stored", summary.PostsStored).
			Int("blocks_skipped", summary.BlocksSkipped).
			Int("links_created", summary.LinksCreated).
			Int("unique_titles", summary.UniqueTitles).
			Msg("scheduled ingestion run finished")
	}

	sched, err := gocron.NewScheduler()
	if err != nil {
		logger.Error().Err(err).Msg("scheduler init failed")
		fmt.Fprintf(os.Stderr, "Scheduler init failed: %v\n", err)
		return 1
	}

	if _, err := sched.NewJob(
		gocron.DurationJob(*interval),
		gocron.NewTask(runOnce),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	); err != nil {
		logger.Error().Err(err).Msg("scheduler job registration failed")
		fmt.Fprintf(os.Stderr, "Scheduler job registration failed: %v\n", err)
		return 1
	}

	sched.Start()
	logger.Info().
		Dur("interval", *interval).
		Int("sources", len(sources)).
		Msg("watch started")

	<-ctx.Done()

	if err := sched.Shutdown(); err != nil {
		logger.Error().Err(err).Msg("scheduler shutdown failed")
		return 1
	}

	logger.Info().Msg("watch stopped")
	return 0
}
