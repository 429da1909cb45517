// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

package unit

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"codeberg.org/transqa/transqa/core/audit"
	"codeberg.org/transqa/transqa/core/checks"
)

// Format names an input file format.
type Format string

// Supported input formats.
const (
	FormatAuto Format = "auto"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatPO   Format = "po"
)

// Formats lists the values accepted by [ParseFormat].
var Formats = []Format{FormatAuto, FormatYAML, FormatJSON, FormatPO}

var (
	// ErrUnknownFormat is returned when the input format cannot be determined.
	ErrUnknownFormat = errors.New("unknown input format")

	// ErrDecode is returned when an input file is malformed.
	ErrDecode = errors.New("failed to decode input")

	// ErrNoSource is returned for a unit without a source string.
	ErrNoSource = errors.New("unit has no source")
)

// ParseFormat validates a format name. The empty string means [FormatAuto].
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatAuto, nil
	}

	for _, f := range Formats {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// DetectFormat guesses the format of path from its extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".po", ".pot":
		return FormatPO, nil
	}

	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// Options control how input files are read.
type Options struct {
	// Format of the input. FormatAuto or empty detects it per file.
	Format Format

	// Language, when set, is assigned to every unit and overrides anything
	// the file says.
	Language string

	// Flags are added to the flags of every unit.
	Flags checks.Flags

	// Workers bounds how many files are read at once.
	Workers int
}

// Parse decodes units from data. name is used for error messages, format
// detection and, for PO files, as a last resort to guess the language.
func Parse(data []byte, name string, opts Options) ([]*Unit, error) {
	format := opts.Format
	if format == "" || format == FormatAuto {
		var err error

		format, err = DetectFormat(name)
		if err != nil {
			return nil, err
		}
	}

	var (
		units []*Unit
		err   error
	)

	switch format {
	case FormatYAML:
		units, err = parseYAML(data, name, opts)
	case FormatJSON:
		units, err = parseJSON(data, name, opts)
	case FormatPO:
		units, err = parsePO(data, name, opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return units, nil
}

// Load reads and decodes a single file.
func Load(ctx context.Context, path string, opts Options) ([]*Unit, error) {
	span := audit.Span{Kind: audit.KindLoad, Name: path}
	_ = span.Begin(ctx)

	defer func() {
		span.End()
		span.Log()
	}()

	data, err := os.ReadFile(path) // #nosec G304 -- reading operator supplied input is the point
	if err != nil {
		span.Error = err

		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	span.Bytes = len(data)

	units, err := Parse(data, path, opts)
	if err != nil {
		span.Error = err

		return nil, err
	}

	span.Items = len(units)

	return units, nil
}

// LoadAll reads every file in paths concurrently and returns their units
// in the order of paths.
func LoadAll(ctx context.Context, paths []string, opts Options) ([]checks.Unit, error) {
	perFile := make([][]*Unit, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	}

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			units, err := Load(gctx, path, opts)
			if err != nil {
				return err
			}

			perFile[i] = units

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []checks.Unit

	for _, units := range perFile {
		for _, u := range units {
			out = append(out, u)
		}
	}

	logger := audit.Sys("unit")
	logger.Debug().
		Int("files", len(paths)).
		Int("units", len(out)).
		Msg("Loaded input")

	return out, nil
}

func buildAll(records []Record, doc defaults, opts Options) ([]*Unit, error) {
	units := make([]*Unit, 0, len(records))

	for i, r := range records {
		if r.Source == "" {
			return nil, fmt.Errorf("unit %d: %w", i+1, ErrNoSource)
		}

		units = append(units, r.build(doc, opts))
	}

	return units, nil
}
