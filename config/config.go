// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Package config holds the transqa configuration: defaults, the YAML file,
// .env and environment variables, validation and logging setup.
package config

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

// Global exposes the process configuration.
var Global Config

// configFileEnv names the environment variable that points at the YAML file.
const configFileEnv = "TRANSQA_CONFIGFILE"

// Default config file locations, tried in order.
var defaultConfigFiles = []string{"./config.yaml", "./config.yml"}

// Config holds the application configuration.
type Config struct {
	Build buildInfo `yaml:"-"`

	Check struct {
		SourceLanguages     []string `env:"TRANSQA_SOURCE_LANGUAGES,overwrite" yaml:"sourceLanguages"`
		Enabled             []string `env:"TRANSQA_CHECKS,overwrite" yaml:"enabled"`
		LexiconFile         string   `env:"TRANSQA_LEXICON_FILE,overwrite" yaml:"lexiconFile"`
		ExtraWords          []string `env:"TRANSQA_EXTRA_WORDS,overwrite" yaml:"extraWords"`
		ExtraIgnorePatterns []string `env:"TRANSQA_EXTRA_IGNORE_PATTERNS,overwrite" yaml:"extraIgnorePatterns"`
		DefaultFlags        []string `env:"TRANSQA_DEFAULT_FLAGS,overwrite" yaml:"defaultFlags"`
		// Zero keeps an unbounded store per validation pass.
		CacheSize int `env:"TRANSQA_CACHE_SIZE,overwrite" yaml:"cacheSize"`
		Workers   int `env:"TRANSQA_WORKERS,overwrite" yaml:"workers"`
	} `yaml:"check"`

	Input struct {
		Format   string `env:"TRANSQA_INPUT_FORMAT,overwrite" yaml:"format"`
		Language string `env:"TRANSQA_LANGUAGE,overwrite" yaml:"language"`
	} `yaml:"input"`

	Output struct {
		Format      string `env:"TRANSQA_OUTPUT_FORMAT,overwrite" yaml:"format"`
		Locale      string `env:"TRANSQA_LOCALE,overwrite" yaml:"locale"`
		OnlyFailed  bool   `env:"TRANSQA_ONLY_FAILED,overwrite" yaml:"onlyFailed"`
		MetricsFile string `env:"TRANSQA_METRICS_FILE,overwrite" yaml:"metricsFile"`
	} `yaml:"output"`

	Log struct {
		Level   string   `env:"TRANSQA_LOG_LEVEL,overwrite" yaml:"logLevel"`
		Outputs []string `env:"TRANSQA_LOG_OUTPUTS,overwrite" yaml:"logOutputs"`
		Format  string   `env:"TRANSQA_LOG_FORMAT,overwrite" yaml:"logFormat"`
	} `yaml:"log"`

	Development struct {
		InDevelopment bool `env:"TRANSQA_DEV" yaml:"inDevelopment"`
	} `yaml:"development"`

	Internationalization struct {
		// Strict mode for missing keys.
		//
		// When enabled, missing keys are logged (deduplicated per locale+key) and
		// visibly wrapped using markers.
		StrictMissingKeys bool `env:"TRANSQA_STRICT_MISSING_KEYS" yaml:"strictMissingKeys"`
	} `yaml:"internationalization"`
}

// LoadConfig loads the configuration from its sources, in increasing
// precedence: defaults, the YAML file, .env, environment variables.
//
// path is the value of the -config flag; an empty path means the flag was
// not given.
func (cfg *Config) LoadConfig(path string) error {
	cfg.SetDefaults()

	cfg.Build.load()

	if err := cfg.readYAML(resolveConfigPath(path)); err != nil {
		return fmt.Errorf("error loading YAML config: %w", err)
	}

	if err := useDotEnv(); err != nil {
		return fmt.Errorf("error using .env file: %w", err)
	}

	if err := readEnv(cfg); err != nil {
		return fmt.Errorf("error loading environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}

	cfg.setupAudit()

	cfg.print()

	return nil
}

// resolveConfigPath picks the config file: the flag value, then
// TRANSQA_CONFIGFILE, then the first default location that exists.
// It returns "" when none applies.
func resolveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}

	if envVar := os.Getenv(configFileEnv); envVar != "" {
		return envVar
	}

	for _, p := range defaultConfigFiles {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	log.Debug().
		Strs("tried", defaultConfigFiles).
		Msg("No default configuration file present")

	return ""
}
