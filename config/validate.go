// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// validation errors.
var (
	errNoSourceLanguage     = errors.New("check.sourceLanguages must name at least one language")
	errInvalidSourceLang    = errors.New("invalid language in check.sourceLanguages")
	errInvalidWorkers       = errors.New("check.workers must be at least 1")
	errInvalidCacheSize     = errors.New("check.cacheSize cannot be negative")
	errInvalidInputFormat   = errors.New("invalid input.format")
	errInvalidOutputFormat  = errors.New("invalid output.format")
	errInvalidInputLanguage = errors.New("invalid input.language")
	errInvalidLogLevel      = errors.New("invalid log.logLevel")
	errInvalidLogFormat     = errors.New("invalid log.logFormat")
)

var (
	// InputFormats lists the accepted values of input.format.
	InputFormats = []string{"auto", "yaml", "json", "po"}

	// OutputFormats lists the accepted values of output.format.
	OutputFormats = []string{"text", "json", "yaml"}

	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"console", "json"}
)

// Validate checks the configuration and normalises a few fields in place.
func (cfg *Config) Validate() error {
	cfg.Check.SourceLanguages = compact(cfg.Check.SourceLanguages)
	if len(cfg.Check.SourceLanguages) == 0 {
		return errNoSourceLanguage
	}

	for _, code := range cfg.Check.SourceLanguages {
		if !validLanguage(code) {
			return fmt.Errorf("%w: %q", errInvalidSourceLang, code)
		}
	}

	// An empty list enables every registered check.
	cfg.Check.Enabled = compact(cfg.Check.Enabled)
	cfg.Check.DefaultFlags = compact(cfg.Check.DefaultFlags)

	if cfg.Check.Workers < 1 {
		return errInvalidWorkers
	}

	if cfg.Check.CacheSize < 0 {
		return errInvalidCacheSize
	}

	if err := oneOf(&cfg.Input.Format, InputFormats, errInvalidInputFormat); err != nil {
		return err
	}

	if cfg.Input.Language != "" && !validLanguage(cfg.Input.Language) {
		return fmt.Errorf("%w: %q", errInvalidInputLanguage, cfg.Input.Language)
	}

	if err := oneOf(&cfg.Output.Format, OutputFormats, errInvalidOutputFormat); err != nil {
		return err
	}

	if err := oneOf(&cfg.Log.Level, logLevels, errInvalidLogLevel); err != nil {
		return err
	}

	return oneOf(&cfg.Log.Format, logFormats, errInvalidLogFormat)
}

// oneOf lower-cases *value and reports sentinel unless it is in allowed.
func oneOf(value *string, allowed []string, sentinel error) error {
	*value = strings.ToLower(strings.TrimSpace(*value))

	if !slices.Contains(allowed, *value) {
		return fmt.Errorf("%w %q, expected one of %s", sentinel, *value, strings.Join(allowed, ", "))
	}

	return nil
}

// validLanguage accepts BCP 47 tags as well as gettext style codes such as
// "pt_BR" or "sr_RS@latin".
func validLanguage(code string) bool {
	if i := strings.IndexByte(code, '@'); i >= 0 {
		code = code[:i]
	}

	_, err := language.Parse(strings.ReplaceAll(code, "_", "-"))

	return err == nil
}

// compact trims items and drops empty and repeated ones, keeping order.
func compact(items []string) []string {
	out := make([]string, 0, len(items))

	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" && !slices.Contains(out, item) {
			out = append(out, item)
		}
	}

	if len(out) == 0 {
		return nil
	}

	return out
}
