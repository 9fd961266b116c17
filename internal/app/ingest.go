package app

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/gamedex/gamedex/internal/catalog"
	"github.com/gamedex/gamedex/internal/cli"
	"github.com/gamedex/gamedex/internal/config"
	"github.com/gamedex/gamedex/internal/db"
	"github.com/gamedex/gamedex/internal/ingest"
	"github.com/gamedex/gamedex/internal/logging"
	manifestschema "github.com/gamedex/gamedex/schema"
)

func runIngest(args []string) int {
	fs := flag.NewFlagSet("ingest", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")
	manifestPath := fs.String("manifest", "", "Path to a JSON manifest of sources")
	timeout := fs.Duration("timeout", 10*time.Second, "Database connect timeout")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
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
		logger.Error().Err(err).Msg("ingest failed to connect to database")
		fmt.Fprintf(os.Stderr, "Failed to connect to database: %v\n", err)
		return 1
	}
	defer pool.Close()

	svc, err := buildIngestService(pool, cfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("ingest setup failed")
		fmt.Fprintf(os.Stderr, "Ingest setup failed: %v\n", err)
		return 1
	}

	summary := svc.Run(context.Background(), sources)

	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to render summary: %v\n", err)
		return 1
	}
	fmt.Println(string(out))
	return 0
}

// resolveSources picks the input set in priority order: an explicit
// manifest, then positional paths, then INPUT_FILES from the config.
func resolveSources(manifestPath string, positional []string, cfg *config.Config) ([]ingest.Source, error) {
	if manifestPath != "" {
		if len(positional) > 0 {
			return nil, fmt.Errorf("pass either --manifest or positional paths, not both")
		}
		raw, err := os.ReadFile(manifestPath)
		if err != nil {
			return nil, fmt.Errorf("read manifest: %w", err)
		}
		manifest, err := manifestschema.ValidateManifest(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid manifest %s: %w", manifestPath, err)
		}
		sources := make([]ingest.Source, 0, len(manifest.Sources))
		for _, src := range manifest.Sources {
			sources = append(sources, ingest.Source{
				Path:      src.Path,
				ChannelID: src.ChannelID,
				Name:      src.Name,
			})
		}
		return sources, nil
	}

	paths := positional
	if len(paths) == 0 {
		paths = cfg.InputFileList()
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no input files: pass paths, --manifest, or set INPUT_FILES")
	}

	sources := make([]ingest.Source, 0, len(paths))
	for _, path := range paths {
		sources = append(sources, ingest.Source{Path: path})
	}
	return sources, nil
}

func buildIngestService(pool *db.Pool, cfg *config.Config, logger zerolog.Logger) (*ingest.Service, error) {
	normalizer, err := catalog.NewNormalizer(catalog.NewClassifier(), catalog.DefaultRuleset())
	if err != nil {
		return nil, fmt.Errorf("build normalizer: %w", err)
	}

	matcher := catalog.NewMatcher(pool, catalog.MatcherConfig{
		SimilarityThreshold: cfg.SimilarityThreshold,
		CandidateLimit:      catalog.DefaultMatcherConfig().CandidateLimit,
		MaxEditDistance:     cfg.MaxEditDistance,
		MinFinalScore:       cfg.MinFinalScore,
		UseEditDistance:     cfg.UseEditDistance,
	})

	return ingest.NewService(pool, normalizer, matcher, logger), nil
}
