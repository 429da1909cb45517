// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/napalu/goopt/v2"

	"codeberg.org/transqa/transqa/config"
)

// cliOptions are the command line flags. Anything set here overrides the
// configuration file and the environment.
type cliOptions struct {
	Config       string   `goopt:"name:config;short:c;desc:Path to a transqa configuration file in YAML format"`
	Format       string   `goopt:"name:format;short:f;desc:Input format: auto, yaml, json or po"`
	Language     string   `goopt:"name:language;short:l;desc:Language code assigned to every unit"`
	Flags        string   `goopt:"name:flags;desc:Comma-separated check flags added to every unit"`
	OutputFormat string   `goopt:"name:output-format;short:o;desc:Report format: text, json or yaml"`
	Locale       string   `goopt:"name:locale;desc:Display locale for check names and report labels"`
	OnlyFailed   bool     `goopt:"name:only-failed;desc:Only report units that failed a check"`
	MetricsFile  string   `goopt:"name:metrics-file;desc:Write verdict counters to this Prometheus textfile"`
	Checks       []string `goopt:"name:checks;desc:Checks to run, comma-separated"`
	Version      bool     `goopt:"name:version;short:v;desc:Print the version and exit"`
	Help         bool     `goopt:"name:help;short:h;desc:Show this help message"`
}

// parseArgs parses args, which must not include the program name, and
// returns the flags and the input files. On failure the returned error lists
// every problem goopt found.
func parseArgs(args []string, usage io.Writer) (*cliOptions, []string, error) {
	opts := &cliOptions{}

	parser, err := goopt.NewParserFromStruct(opts,
		goopt.WithAutoHelp(false),
		// Paths start with '/', so only '-' introduces a flag.
		goopt.WithArgumentPrefixes([]rune{'-'}),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build command line parser: %w", err)
	}

	ok := parser.Parse(args)

	if opts.Help {
		fmt.Fprintln(usage, "Usage: transqa [flags] <input files...>")
		parser.PrintUsageWithGroups(usage)

		return opts, nil, nil
	}

	if !ok {
		problems := make([]string, 0, parser.GetErrorCount())
		for _, parseErr := range parser.GetErrors() {
			problems = append(problems, parseErr.Error())
		}

		return nil, nil, fmt.Errorf("%w: %s", errUsage, strings.Join(problems, "; "))
	}

	var inputs []string

	for _, pos := range parser.GetPositionalArgs() {
		if pos.Argument == nil {
			inputs = append(inputs, pos.Value)
		}
	}

	return opts, inputs, nil
}

// apply copies the flags that were given onto cfg.
func (o *cliOptions) apply(cfg *config.Config) {
	if o.Format != "" {
		cfg.Input.Format = o.Format
	}

	if o.Language != "" {
		cfg.Input.Language = o.Language
	}

	if o.Flags != "" {
		cfg.Check.DefaultFlags = append(cfg.Check.DefaultFlags, strings.Split(o.Flags, ",")...)
	}

	if o.OutputFormat != "" {
		cfg.Output.Format = o.OutputFormat
	}

	if o.Locale != "" {
		cfg.Output.Locale = o.Locale
	}

	if o.OnlyFailed {
		cfg.Output.OnlyFailed = true
	}

	if o.MetricsFile != "" {
		cfg.Output.MetricsFile = o.MetricsFile
	}

	if len(o.Checks) > 0 {
		cfg.Check.Enabled = o.Checks
	}
}
