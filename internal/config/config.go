package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"local"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`
	DBMinConns  int32  `envconfig:"GAMEDEX_DB_MIN_CONNS" default:"1"`
	DBMaxConns  int32  `envconfig:"GAMEDEX_DB_MAX_CONNS" default:"8"`

	// InputFiles is the comma-separated list of source dumps used when the
	// ingest command is given neither positional paths nor a manifest.
	InputFiles string `envconfig:"INPUT_FILES" default:""`

	// SimilarityThreshold is the pg_trgm candidate floor. 0.99 is the strict
	// profile; 0.75 trades precision for recall on messier dumps.
	SimilarityThreshold float64 `envconfig:"SIMILARITY_THRESHOLD" default:"0.99"`
	MaxEditDistance     int     `envconfig:"MAX_EDIT_DISTANCE" default:"5"`
	MinFinalScore       float64 `envconfig:"MIN_FINAL_SCORE" default:"0.6"`
	UseEditDistance     bool    `envconfig:"USE_EDIT_DISTANCE" default:"true"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.DBMinConns < 0 {
		return fmt.Errorf("GAMEDEX_DB_MIN_CONNS must be >= 0")
	}
	if c.DBMaxConns < 1 {
		return fmt.Errorf("GAMEDEX_DB_MAX_CONNS must be >= 1")
	}
	if c.DBMinConns > c.DBMaxConns {
		return fmt.Errorf("GAMEDEX_DB_MIN_CONNS (%d) cannot exceed GAMEDEX_DB_MAX_CONNS (%d)", c.DBMinConns, c.DBMaxConns)
	}
	if c.SimilarityThreshold <= 0 || c.SimilarityThreshold > 1 {
		return fmt.Errorf("SIMILARITY_THRESHOLD must be in (0, 1], got %g", c.SimilarityThreshold)
	}
	if c.MaxEditDistance < 0 {
		return fmt.Errorf("MAX_EDIT_DISTANCE must be >= 0")
	}
	if c.MinFinalScore < 0 {
		return fmt.Errorf("MIN_FINAL_SCORE must be >= 0")
	}
	return nil
}

// InputFileList splits INPUT_FILES into trimmed, de-duplicated paths.
func (c *Config) InputFileList() []string {
	if c == nil {
		return nil
	}

	parts := strings.Split(c.InputFiles, ",")
	paths := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, part := range parts {
		path := strings.TrimSpace(part)
		if path == "" {
			continue
		}
		if _, exists := seen[path]; exists {
			continue
		}
		seen[path] = struct{}{}
		paths = append(paths, path)
	}
	return paths
}
