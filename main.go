// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
transqa checks translation files for strings that were left untranslated,
that is, targets identical to their source text.

	transqa [flags] <input files...>

Input files may be gettext PO catalogues, or YAML and JSON documents
listing translation units. The exit status is 0 when every unit passed,
1 when at least one unit failed a check and 2 on usage or setup errors.
*/
package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"

	"codeberg.org/transqa/transqa/assets"
	"codeberg.org/transqa/transqa/config"
	"codeberg.org/transqa/transqa/core/audit"
	"codeberg.org/transqa/transqa/core/checks"
	"codeberg.org/transqa/transqa/core/report"
	"codeberg.org/transqa/transqa/core/unit"
	"codeberg.org/transqa/transqa/i18n"
)

// Exit statuses.
const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

var errUsage = errors.New("invalid command line")

// embeddedContent holds the gettext catalogues.
//
//go:embed all:po
var embeddedContent embed.FS

// init assigns the embedded filesystem to the exported assets.FS variable.
//
//nolint:gochecknoinits // this is a good use of init()
func init() {
	assets.FS = embeddedContent
}

// main is the entry point of the application.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	code := run(ctx, os.Args[1:], os.Stdout)

	stop()
	os.Exit(code)
}

// run executes one transqa invocation and returns the exit status.
func run(ctx context.Context, args []string, stdout io.Writer) int {
	audit.SetDefaultLogger()

	opts, inputs, err := parseArgs(args, stdout)
	if err != nil {
		log.Error().Err(err).Msg("Could not parse command line")

		return exitUsage
	}

	switch {
	case opts.Help:
		printLocales(stdout)

		return exitOK
	case opts.Version:
		fmt.Fprintf(stdout, "transqa %s\n", config.BuildVersion)

		return exitOK
	}

	failed, err := validate(ctx, opts, inputs, stdout)
	if err != nil {
		log.Error().Err(err).Msg("Validation did not complete")

		return exitUsage
	}

	if failed > 0 {
		return exitFailed
	}

	return exitOK
}

// validate loads the configuration, checks every input and writes the
// report. It returns how many units failed.
func validate(ctx context.Context, opts *cliOptions, inputs []string, stdout io.Writer) (int, error) {
	cfg := &config.Global

	if err := cfg.LoadConfig(opts.Config); err != nil {
		return 0, fmt.Errorf("failed to load configuration: %w", err)
	}

	opts.apply(cfg)

	if err := cfg.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %w", errUsage, err)
	}

	if len(inputs) == 0 {
		return 0, fmt.Errorf("%w: no input files given", errUsage)
	}

	if err := i18n.Setup(); err != nil {
		return 0, fmt.Errorf("failed to initialize i18n engine: %w", err)
	}

	ctx = i18n.WithTag(ctx, displayLocale(cfg.Output.Locale))

	format, err := unit.ParseFormat(cfg.Input.Format)
	if err != nil {
		return 0, err
	}

	outputFormat, err := report.ParseFormat(cfg.Output.Format)
	if err != nil {
		return 0, err
	}

	eng, err := newEngine(cfg)
	if err != nil {
		return 0, err
	}

	units, err := unit.LoadAll(ctx, inputs, unit.Options{
		Format:   format,
		Language: cfg.Input.Language,
		Flags:    checks.NewFlags(cfg.Check.DefaultFlags...),
		Workers:  cfg.Check.Workers,
	})
	if err != nil {
		return 0, err
	}

	pass, err := eng.run(ctx, units)
	if err != nil {
		return 0, err
	}

	err = report.Write(ctx, stdout, pass, report.Options{
		Format:     outputFormat,
		OnlyFailed: cfg.Output.OnlyFailed,
		Checks:     eng.runner.Checks,
	})
	if err != nil {
		return 0, err
	}

	if cfg.Output.MetricsFile != "" {
		if err := writeMetrics(cfg.Output.MetricsFile, eng, pass); err != nil {
			return 0, err
		}
	}

	return pass.FailedUnits(), nil
}

// printLocales lists the locales --locale accepts. The list is left out
// when the catalogues cannot be loaded.
func printLocales(w io.Writer) {
	if err := i18n.Setup(); err != nil {
		return
	}

	names := make([]string, 0)
	for _, t := range i18n.Languages() {
		names = append(names, t.String())
	}

	fmt.Fprintf(w, "\nDisplay locales: %s\n", strings.Join(names, ", "))
}

// displayLocale picks the locale for report labels: the configured one,
// otherwise the one named by the environment.
func displayLocale(configured string) language.Tag {
	if configured != "" {
		return i18n.Match(configured)
	}

	return i18n.FromEnv()
}

func writeMetrics(path string, eng *engine, pass *checks.Pass) error {
	ids := make([]string, 0, len(eng.runner.Checks))
	for _, c := range eng.runner.Checks {
		ids = append(ids, c.ID())
	}

	m := report.NewMetrics()
	m.Observe(pass, ids)

	if stats, ok := eng.cacheStats(); ok {
		m.ObserveCache(stats)
	}

	if err := m.WriteTextfile(path); err != nil {
		return err
	}

	log.Debug().Str("path", path).Msg("Wrote metrics")

	return nil
}
