// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

const (
	// Default number of units evaluated concurrently.
	defaultWorkers = 4
)

// SetDefaults populates the configuration with default values.
func (cfg *Config) SetDefaults() {
	cfg.Check.SourceLanguages = []string{"en"}
	cfg.Check.Enabled = []string{"same"}
	cfg.Check.LexiconFile = ""
	cfg.Check.ExtraWords = nil
	cfg.Check.ExtraIgnorePatterns = nil
	cfg.Check.DefaultFlags = nil
	cfg.Check.CacheSize = 0
	cfg.Check.Workers = defaultWorkers

	cfg.Input.Format = "auto"
	cfg.Input.Language = ""

	cfg.Output.Format = "text"
	cfg.Output.Locale = ""
	cfg.Output.OnlyFailed = false
	cfg.Output.MetricsFile = ""

	cfg.Log.Level = "info"
	cfg.Log.Outputs = []string{"/dev/stderr"}
	cfg.Log.Format = "console"

	cfg.Development.InDevelopment = false

	cfg.Internationalization.StrictMissingKeys = false
}
