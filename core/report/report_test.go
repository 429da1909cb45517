// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

package report

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"codeberg.org/transqa/transqa/assets"
	"codeberg.org/transqa/transqa/core/cache"
	"codeberg.org/transqa/transqa/core/checks"
	"codeberg.org/transqa/transqa/core/checks/same"
	"codeberg.org/transqa/transqa/core/lexicon"
	"codeberg.org/transqa/transqa/core/patterns"
	"codeberg.org/transqa/transqa/i18n"
)

const passID = "6f1c2d3e-4a5b-4c6d-8e7f-0123456789ab"

func TestMain(m *testing.M) {
	assets.FS = os.DirFS("../..")

	if err := i18n.Setup(); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

func testPass() *checks.Pass {
	started := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	return &checks.Pass{
		ID:       uuid.MustParse(passID),
		Started:  started,
		Finished: started.Add(1500 * time.Millisecond),
		Results: []checks.Result{
			{UnitID: "greeting", Language: "cs", Source: "Hello", Target: "Hello", Failed: []string{same.CheckID}},
			{UnitID: "farewell", Language: "cs", Source: "Goodbye", Target: "Nashledanou"},
		},
	}
}

func testChecks() []checks.Check {
	return []checks.Check{same.New(patterns.MustRegistry(), lexicon.New())}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Format
		err  error
	}{
		{"", FormatText, nil},
		{"text", FormatText, nil},
		{" JSON ", FormatJSON, nil},
		{"yaml", FormatYAML, nil},
		{"xml", "", ErrUnknownFormat},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.err != nil {
			require.ErrorIs(t, err, tt.err)

			continue
		}

		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestWriteText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		tag  language.Tag
		opts Options
		want string
	}{
		{
			name: "all units",
			opts: Options{Checks: testChecks()},
			want: "Validation pass " + passID + "\n\n" +
				"✗ greeting (cs): Not translated\n" +
				"    Source: Hello\n" +
				"    Target: Hello\n" +
				"✓ farewell (cs)\n\n" +
				"Not translated: Source and translated strings are same\n" +
				"2 units checked\n" +
				"1 unit failed\n",
		},
		{
			name: "only failed, czech",
			tag:  language.Czech,
			opts: Options{Checks: testChecks(), OnlyFailed: true},
			want: "Kontrola " + passID + "\n\n" +
				"✗ greeting (cs): Nepřeloženo\n" +
				"    Zdroj: Hello\n" +
				"    Překlad: Hello\n\n" +
				"Nepřeloženo: Zdrojový a přeložený text jsou stejné\n" +
				"Zkontrolovány 2 řetězce\n" +
				"1 řetězec neprošel\n",
		},
		{
			name: "unknown check id",
			opts: Options{},
			want: "Validation pass " + passID + "\n\n" +
				"✗ greeting (cs): same\n" +
				"    Source: Hello\n" +
				"    Target: Hello\n" +
				"✓ farewell (cs)\n\n" +
				"2 units checked\n" +
				"1 unit failed\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			if tt.tag != (language.Tag{}) {
				ctx = i18n.WithTag(ctx, tt.tag)
			}

			var buf bytes.Buffer

			require.NoError(t, Write(ctx, &buf, testPass(), tt.opts))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	opts := Options{Format: FormatJSON, Checks: testChecks(), OnlyFailed: true}
	require.NoError(t, Write(context.Background(), &buf, testPass(), opts))

	var doc document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, passID, doc.Pass)
	assert.Equal(t, 2, doc.Units)
	assert.Equal(t, 1, doc.Failed)
	require.Len(t, doc.Checks, 1)
	assert.Equal(t, checkSummary{
		ID:          same.CheckID,
		Name:        "Not translated",
		Description: "Source and translated strings are same",
		Failures:    1,
	}, doc.Checks[0])
	require.Len(t, doc.Results, 1)
	assert.Equal(t, "greeting", doc.Results[0].UnitID)
}

func TestWriteYAML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	ctx := i18n.WithTag(context.Background(), language.German)
	require.NoError(t, Write(ctx, &buf, testPass(), Options{Format: FormatYAML, Checks: testChecks()}))

	out := buf.String()
	assert.Contains(t, out, "pass: "+passID)
	assert.Contains(t, out, "name: Nicht übersetzt")
	assert.Contains(t, out, "failures: 1")
	assert.Contains(t, out, "unit: farewell")
}

func TestWriteUnknownFormat(t *testing.T) {
	t.Parallel()

	err := Write(context.Background(), &bytes.Buffer{}, testPass(), Options{Format: "xml"})
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

type failingWriter struct{}

var errWrite = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestWriteError(t *testing.T) {
	t.Parallel()

	for _, f := range Formats {
		err := Write(context.Background(), failingWriter{}, testPass(), Options{Format: f})
		assert.ErrorIs(t, err, errWrite, f)
	}
}

func TestMetrics(t *testing.T) {
	t.Parallel()

	m := NewMetrics()
	m.Observe(testPass(), []string{same.CheckID, "other"})
	m.ObserveCache(cache.Stats{Hits: 3, Misses: 2, Evictions: 1})

	path := filepath.Join(t.TempDir(), "transqa.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	out := string(data)
	for _, line := range []string{
		`transqa_units_total{verdict="failed"} 1`,
		`transqa_units_total{verdict="passed"} 1`,
		`transqa_check_failures_total{check="same"} 1`,
		`transqa_check_failures_total{check="other"} 0`,
		`transqa_pass_duration_seconds 1.5`,
		`transqa_cache_operations{operation="hit"} 3`,
		`transqa_cache_operations{operation="eviction"} 1`,
	} {
		assert.Contains(t, out, line)
	}
}

func TestMetricsUnwritable(t *testing.T) {
	t.Parallel()

	m := NewMetrics()
	m.Observe(testPass(), nil)

	assert.Error(t, m.WriteTextfile(filepath.Join(t.TempDir(), "missing", "transqa.prom")))
}
