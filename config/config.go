package config

import (
	"fmt"
	"hanabi/meta"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config holds the dataset pipeline configuration.
type Config struct {
	Dataset DatasetConfig `yaml:"dataset" json:"dataset"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// DatasetConfig configures sample generation.
type DatasetConfig struct {
	FullGamesDir       string   `yaml:"full_games_dir" json:"full_games_dir"`
	PredictionGamesDir string   `yaml:"prediction_games_dir" json:"prediction_games_dir"`
	Output             string   `yaml:"output" json:"output"`
	MetricsDir         string   `yaml:"metrics_dir" json:"metrics_dir"`
	Bots               []string `yaml:"bots" json:"bots"`
	SamplesPerPair     int      `yaml:"samples_per_pair" json:"samples_per_pair"`
	ContextGames       int      `yaml:"context_games" json:"context_games"`
	Seed               uint64   `yaml:"seed" json:"seed"`
	Workers            int      `yaml:"workers" json:"workers"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" json:"level"` // debug, info, warn, error
	Pretty bool   `yaml:"pretty" json:"pretty"`
}

func DefaultConfig() *Config {
	return &Config{
		Dataset: DatasetConfig{
			FullGamesDir:       "training_full_games",
			PredictionGamesDir: "training_prediction_games",
			Output:             "training_samples_encoded.json",
			MetricsDir:         "metrics",
			Bots:               append([]string(nil), meta.Bots...),
			SamplesPerPair:     meta.SamplesPerPair,
			ContextGames:       meta.ContextGames,
			Seed:               meta.Seed,
			Workers:            meta.Workers,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML file over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	d := c.Dataset
	if d.FullGamesDir == "" || d.PredictionGamesDir == "" {
		return fmt.Errorf("dataset directories not configured")
	}
	if len(d.Bots) == 0 {
		return fmt.Errorf("no bots configured")
	}
	if d.SamplesPerPair <= 0 || d.ContextGames <= 0 || d.Workers <= 0 {
		return fmt.Errorf("samples_per_pair, context_games and workers must be positive")
	}
	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid logging level: %s", c.Logging.Level)
	}
	return nil
}

// LogLevel returns the configured level, falling back to info.
func (c *Config) LogLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(c.Logging.Level)
	if err != nil || c.Logging.Level == "" {
		return zerolog.InfoLevel
	}
	return level
}
