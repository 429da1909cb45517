// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

package checks

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testUnit struct {
	id      string
	sources []string
	targets []string
	flags   Flags
	lang    string
}

func (u testUnit) ID() string           { return u.id }
func (u testUnit) Sources() []string    { return u.sources }
func (u testUnit) Targets() []string    { return u.targets }
func (u testUnit) Flags() Flags         { return u.flags }
func (u testUnit) LanguageCode() string { return u.lang }

func single(id, source, target string, flags ...string) testUnit {
	return testUnit{
		id:      id,
		sources: []string{source},
		targets: []string{target},
		flags:   NewFlags(flags...),
		lang:    "cs",
	}
}

// equalCheck fails identical pairs and caches the source length per slot.
type equalCheck struct {
	id       string
	computed atomic.Int32
	calls    atomic.Int32
}

func (c *equalCheck) ID() string {
	if c.id == "" {
		return "equal"
	}

	return c.id
}

func (c *equalCheck) Meta() Meta {
	return Meta{ID: c.ID(), Name: "Equal", Description: "Source and target are equal"}
}

func (c *equalCheck) CheckSingle(source, target string, unit Unit, slot CacheSlot) bool {
	c.calls.Add(1)

	if _, ok := GetCache(c, unit, slot); !ok {
		c.computed.Add(1)
		SetCache(c, unit, slot, len(source))
	}

	return source == target
}

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Flags
	}{
		{"", nil},
		{"python-format", Flags{"python-format"}},
		{" python-format, c-format,,python-format ", Flags{"python-format", "c-format"}},
		{"ignore-same,rst-text", Flags{"ignore-same", "rst-text"}},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, ParseFlags(tt.in)); diff != "" {
			t.Errorf("ParseFlags(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}

	assert.Equal(t, "python-format, c-format", ParseFlags("python-format,c-format").String())
}

func TestFlagsMerge(t *testing.T) {
	t.Parallel()

	base := Flags{"c-format", "fuzzy"}
	merged := base.Merge(Flags{"fuzzy", "ignore-same"})

	assert.Equal(t, Flags{"c-format", "fuzzy", "ignore-same"}, merged)
	assert.Equal(t, Flags{"c-format", "fuzzy"}, base)
	assert.True(t, merged.Has("ignore-same"))
	assert.False(t, merged.Has("ignore"))
}

func TestCache(t *testing.T) {
	t.Parallel()

	check := &equalCheck{}
	unit := single("u1", "a", "b")
	store := NewPassStore()

	assert.Equal(t, "check-equal-u1-0", CacheKey(check.ID(), unit.ID(), 0))

	// No store, no caching.
	SetCache(check, unit, CacheSlot{}, true)
	_, ok := GetCache(check, unit, CacheSlot{})
	assert.False(t, ok)

	singular := CacheSlot{Store: store}
	plural := CacheSlot{Store: store, Form: 1}

	SetCache(check, unit, singular, "one")
	SetCache(check, unit, plural, "many")

	v, ok := GetCache(check, unit, singular)
	require.True(t, ok)
	assert.Equal(t, "one", v)

	v, ok = GetCache(check, unit, plural)
	require.True(t, ok)
	assert.Equal(t, "many", v)

	_, ok = GetCache(&equalCheck{id: "other"}, unit, singular)
	assert.False(t, ok)

	_, ok = GetCache(check, nil, singular)
	assert.False(t, ok)

	assert.Equal(t, 2, store.Len())
}

func TestIsLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code  string
		codes []string
		want  bool
	}{
		{"en", []string{"en"}, true},
		{"en_GB", []string{"en"}, true},
		{"EN", []string{"en"}, true},
		{"pt_BR", []string{"de", "pt"}, true},
		{"sr_RS@latin", []string{"sr"}, true},
		{"zh-Hant", []string{"zh"}, true},
		{"xx_YY", []string{"xx"}, true},
		{"cs", []string{"en"}, false},
		{"cs", nil, false},
		{"", []string{"en"}, false},
		{"en", []string{""}, false},
	}

	for _, tt := range tests {
		unit := testUnit{lang: tt.code}
		assert.Equal(t, tt.want, IsLanguage(unit, tt.codes...), "%q in %v", tt.code, tt.codes)
	}

	assert.False(t, IsLanguage(nil, "en"))
}

func TestCheckUnit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		unit Unit
		want bool
	}{
		{"identical", single("1", "file", "file"), true},
		{"translated", single("2", "file", "soubor"), false},
		{"ignored by flag", single("3", "file", "file", "ignore-equal"), false},
		{"other ignore flag", single("4", "file", "file", "ignore-same"), true},
		{"untranslated", single("5", "file", ""), false},
		{"no targets", testUnit{id: "6", sources: []string{"file"}}, false},
		{"no sources", testUnit{id: "7", targets: []string{"file"}}, false},
		{"nil unit", nil, false},
		{
			"plural form identical",
			testUnit{id: "8", sources: []string{"file", "files"}, targets: []string{"soubor", "soubory", "files"}},
			true,
		},
		{
			"plural translated",
			testUnit{id: "9", sources: []string{"file", "files"}, targets: []string{"soubor", "soubory", "souborů"}},
			false,
		},
		{
			"extra targets without plural source",
			testUnit{id: "10", sources: []string{"file"}, targets: []string{"soubor", "file"}},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, CheckUnit(&equalCheck{}, tt.unit, NewPassStore()))
		})
	}
}

func TestCheckUnitFormSlots(t *testing.T) {
	t.Parallel()

	check := &equalCheck{}
	store := NewPassStore()
	unit := testUnit{id: "p", sources: []string{"file", "files"}, targets: []string{"a", "b", "c"}}

	assert.False(t, CheckUnit(check, unit, store))
	assert.Equal(t, int32(3), check.calls.Load())
	// One computation for the singular slot and one shared by both plural targets.
	assert.Equal(t, int32(2), check.computed.Load())
	assert.Equal(t, 2, store.Len())
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	a := &equalCheck{id: "a"}
	b := &equalCheck{id: "b"}

	reg, err := NewRegistry(a, b)
	require.NoError(t, err)

	err = reg.Register(&equalCheck{id: "a"})
	require.ErrorIs(t, err, ErrDuplicateCheck)

	_, err = NewRegistry(a, a)
	require.ErrorIs(t, err, ErrDuplicateCheck)

	got, ok := reg.Get("b")
	require.True(t, ok)
	assert.Same(t, b, got)

	_, ok = reg.Get("c")
	assert.False(t, ok)

	assert.Equal(t, []Check{a, b}, reg.All())

	enabled, err := reg.Enabled([]string{"b", "a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []Check{b, a}, enabled)

	enabled, err = reg.Enabled(nil)
	require.NoError(t, err)
	assert.Len(t, enabled, 2)

	_, err = reg.Enabled([]string{"a", "missing"})
	require.ErrorIs(t, err, ErrUnknownCheck)
}

func TestRunner(t *testing.T) {
	t.Parallel()

	check := &equalCheck{}
	units := []Unit{
		single("1", "file", "file"),
		single("2", "file", "soubor"),
		single("3", "file", "file", "ignore-equal"),
		single("1", "file", "file"),
	}

	runner := &Runner{Checks: []Check{check}, Workers: 1}

	pass, err := runner.Run(context.Background(), units)
	require.NoError(t, err)

	want := []Result{
		{UnitID: "1", Language: "cs", Source: "file", Target: "file", Failed: []string{"equal"}},
		{UnitID: "2", Language: "cs", Source: "file", Target: "soubor"},
		{UnitID: "3", Language: "cs", Source: "file", Target: "file"},
		{UnitID: "1", Language: "cs", Source: "file", Target: "file", Failed: []string{"equal"}},
	}

	if diff := cmp.Diff(want, pass.Results); diff != "" {
		t.Errorf("results mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, 2, pass.FailedUnits())
	assert.Equal(t, map[string]int{"equal": 2}, pass.Failures())
	assert.False(t, pass.Started.After(pass.Finished))
	// The repeated unit hits the cache.
	assert.Equal(t, int32(2), check.computed.Load())

	second, err := runner.Run(context.Background(), units)
	require.NoError(t, err)
	assert.NotEqual(t, pass.ID, second.ID)
	// A new pass starts from an empty store.
	assert.Equal(t, int32(4), check.computed.Load())
}

func TestRunnerNewStore(t *testing.T) {
	t.Parallel()

	var created atomic.Int32

	runner := &Runner{
		Checks: []Check{&equalCheck{}},
		NewStore: func() Store {
			created.Add(1)

			return NewPassStore()
		},
	}

	for range 3 {
		_, err := runner.Run(context.Background(), []Unit{single("1", "a", "a")})
		require.NoError(t, err)
	}

	assert.Equal(t, int32(3), created.Load())
}

func TestRunnerCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := &Runner{Checks: []Check{&equalCheck{}}}

	pass, err := runner.Run(ctx, []Unit{single("1", "a", "a")})
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, pass)
}
