// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Command i18n_extract collects the msgids used with package i18n and
// writes them to a gettext template.
package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/napalu/goopt/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/tools/go/packages"

	"codeberg.org/transqa/transqa/core/audit"
)

type options struct {
	Output   string `goopt:"name:output;short:o;default:po/transqa.pot;desc:Output file"`
	Patterns string `goopt:"name:packages;short:p;default:./...;desc:Package patterns to scan, comma-separated"`
}

func main() {
	audit.SetDefaultLogger()

	opts := &options{}

	parser, err := goopt.NewParserFromStruct(opts)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build command line parser")
	}

	if !parser.Parse(os.Args) {
		for _, parseErr := range parser.GetErrors() {
			log.Error().Err(parseErr).Msg("Invalid argument")
		}

		parser.PrintUsageWithGroups(os.Stderr)
		os.Exit(2)
	}

	wd, err := os.Getwd()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get working directory")
	}

	pkgs, err := packages.Load(&packages.Config{Mode: packages.LoadAllSyntax}, strings.Split(opts.Patterns, ",")...)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load packages")
	}

	if packages.PrintErrors(pkgs) > 0 {
		log.Fatal().Msg("Failed to load packages due to errors")
	}

	refs := extractRefs(pkgs, findProjectRoot(wd), findI18nPkgPaths(pkgs))

	var b strings.Builder
	writePOT(&b, refs, detectVersion())

	if err := os.MkdirAll(filepath.Dir(opts.Output), 0o755); err != nil {
		log.Fatal().Err(err).Msg("Failed to create output directory")
	}

	if err := os.WriteFile(opts.Output, []byte(b.String()), 0o644); err != nil {
		log.Fatal().Err(err).Str("path", opts.Output).Msg("Failed to write template")
	}

	log.Info().
		Int("msgids", len(refs)).
		Str("path", opts.Output).
		Msg("Wrote message template")
}
