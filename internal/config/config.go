package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"showdown-server/internal/util"
)

// Config provides configuration for the showdown server
type Config struct {
	loaded bool
	Log    struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	Evaluator struct {
		// CacheSize is the number of card sets whose groupings are kept in memory
		CacheSize int `yaml:"cacheSize" envconfig:"cache_size"`
		// Parallelism is the number of candidates evaluated at once
		Parallelism int `yaml:"parallelism" envconfig:"parallelism"`
	} `yaml:"evaluator"`
	// MaxCandidates is the most players accepted in a single showdown
	MaxCandidates int `yaml:"maxCandidates" envconfig:"max_candidates"`
}

var config Config

// DefaultConfig returns the configuration used when nothing overrides it
func DefaultConfig() Config {
	cfg := Config{}
	cfg.Log.Level = "info"
	cfg.Evaluator.CacheSize = 4096
	cfg.Evaluator.Parallelism = 4
	// 23 players with two pocket cards and a board of five uses the whole deck
	cfg.MaxCandidates = 23

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// The configuration file is optional. Environment variables override the file.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("SHOWDOWN_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if file != nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return fmt.Errorf("could not decode %s: %w", configFile, err)
		}
	}

	if err := envconfig.Process("showdown", &cfg); err != nil {
		return err
	}

	if err := cfg.validate(); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

func (c Config) validate() error {
	if c.Evaluator.CacheSize < 0 {
		return fmt.Errorf("evaluator cache size cannot be negative: %d", c.Evaluator.CacheSize)
	}

	if c.Evaluator.Parallelism < 1 {
		return fmt.Errorf("evaluator parallelism must be at least one: %d", c.Evaluator.Parallelism)
	}

	if c.MaxCandidates < 1 {
		return fmt.Errorf("max candidates must be at least one: %d", c.MaxCandidates)
	}

	return nil
}
