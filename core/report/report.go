// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Package report renders the results of a validation pass as text for
// people, or as JSON or YAML for tools, and exports verdict counters in the
// Prometheus text format.
package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"codeberg.org/transqa/transqa/core/audit"
	"codeberg.org/transqa/transqa/core/checks"
)

// Format selects how a pass is rendered.
type Format string

// Supported report formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists every report format.
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

// ErrUnknownFormat is returned for a report format that is not supported.
var ErrUnknownFormat = errors.New("unknown report format")

// ParseFormat maps a name such as "json" to its Format. The empty string
// selects FormatText.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatText, nil
	}

	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Formats, f) {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}

	return f, nil
}

// Options control what a report contains.
type Options struct {
	Format Format

	// OnlyFailed drops units that passed every check.
	OnlyFailed bool

	// Checks supplies names and descriptions for the check IDs found in
	// the results. IDs without a check are shown as they are.
	Checks []checks.Check
}

// Write renders pass to w. Display strings are translated for the locale
// carried by ctx.
func Write(ctx context.Context, w io.Writer, pass *checks.Pass, opts Options) error {
	format, err := ParseFormat(string(opts.Format))
	if err != nil {
		return err
	}

	doc := newDocument(ctx, pass, opts)

	span := audit.Span{
		Kind:  audit.KindReport,
		ID:    doc.Pass,
		Name:  string(format),
		Items: len(doc.Results),
	}
	ctx = span.Begin(ctx)

	cw := &countingWriter{w: w}

	switch format {
	case FormatJSON:
		err = writeJSON(cw, doc)
	case FormatYAML:
		err = writeYAML(cw, doc)
	default:
		err = writeText(ctx, cw, doc)
	}

	span.End()
	span.Bytes = cw.n
	span.Error = err
	span.Log()

	if err != nil {
		return fmt.Errorf("failed to write %s report: %w", format, err)
	}

	return nil
}

// document is the serialised form of a pass.
type document struct {
	Pass     string          `json:"pass"     yaml:"pass"`
	Started  time.Time       `json:"started"  yaml:"started"`
	Finished time.Time       `json:"finished" yaml:"finished"`
	Units    int             `json:"units"    yaml:"units"`
	Failed   int             `json:"failed"   yaml:"failed"`
	Checks   []checkSummary  `json:"checks"   yaml:"checks"`
	Results  []checks.Result `json:"results"  yaml:"results"`
}

// checkSummary describes one check and how many units it failed.
type checkSummary struct {
	ID          string `json:"id"          yaml:"id"`
	Name        string `json:"name"        yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Failures    int    `json:"failures"    yaml:"failures"`
}

func newDocument(ctx context.Context, pass *checks.Pass, opts Options) document {
	failures := pass.Failures()

	doc := document{
		Pass:     pass.ID.String(),
		Started:  pass.Started,
		Finished: pass.Finished,
		Units:    len(pass.Results),
		Failed:   pass.FailedUnits(),
		Checks:   make([]checkSummary, 0, len(opts.Checks)),
		Results:  make([]checks.Result, 0, len(pass.Results)),
	}

	for _, c := range opts.Checks {
		meta := c.Meta()
		doc.Checks = append(doc.Checks, checkSummary{
			ID:          c.ID(),
			Name:        meta.Name.Tr(ctx),
			Description: meta.Description.Tr(ctx),
			Failures:    failures[c.ID()],
		})
	}

	for _, r := range pass.Results {
		if opts.OnlyFailed && r.OK() {
			continue
		}

		doc.Results = append(doc.Results, r)
	}

	return doc
}

// checkName returns the display name of the check with the given ID.
func (doc *document) checkName(id string) string {
	for _, c := range doc.Checks {
		if c.ID == id {
			return c.Name
		}
	}

	return id
}

// countingWriter counts the bytes written through it.
type countingWriter struct {
	w io.Writer
	n int
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += n

	return n, err
}
