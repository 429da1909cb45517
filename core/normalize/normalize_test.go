// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"codeberg.org/transqa/transqa/core/patterns"
)

var normalizeTests = []struct {
	name  string
	in    string
	flags []string
	want  string
}{
	{"plain", "Hello, world!", nil, "Hello  world"},
	{"python format", "%(count)s files", []string{patterns.PythonFormat}, "files"},
	{"format ignored without flag", "%(count)s files", nil, "count)s files"},
	{"entity", "Fedora &amp; openSUSE", nil, "Fedora & openSUSE"},
	{"email", "Email: weblate@example.org", nil, "Email"},
	{"url", "Homepage: https://weblate.org/", nil, "Homepage"},
	{"path keeps head", "File/directory", nil, "File"},
	{"separators", "lo_cal,host\\name", nil, "lo cal host name"},
	{"only punctuation", "(-) [*]", nil, ""},
	{"non-latin", "«Привет»", nil, "«Привет»"},
	{"brace format", "{0}: {name} saved", []string{patterns.PythonBraceFormat}, "saved"},
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	n := New(patterns.MustRegistry())

	for _, tt := range normalizeTests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, n.Normalize(tt.in, tt.flags))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()

	n := New(patterns.MustRegistry())

	for _, tt := range normalizeTests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			once := n.Normalize(tt.in, tt.flags)
			assert.Equal(t, once, n.Normalize(once, tt.flags))
		})
	}
}

func TestSteps(t *testing.T) {
	t.Parallel()

	n := New(patterns.MustRegistry(`\bTODO\b`))

	names := make([]string, 0)
	for _, s := range n.Steps() {
		names = append(names, s.Name)
	}

	assert.Equal(t,
		[]string{"email", "url", "hash", "domain", "path", "template", "extra-0", "entities"},
		names)

	steps := n.Steps()
	steps[0].Name = "changed"
	assert.Equal(t, "email", n.Steps()[0].Name)

	assert.Equal(t, " list", n.StripNoise("TODO list"))
}

func TestReplaceEntities(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"no entities", "no entities"},
		{"a&nbsp;b", "a b"},
		{"&lt;b&gt;", "<b>"},
		{"&ldquo;x&rdquo;", `"x"`},
		{"2&times;3", "2.3"},
		{"&quot;&rsaquo;", `""`},
		{"&amp;lt;", "&lt;"},
		{"&hellip;", "&hellip;"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ReplaceEntities(tt.in), tt.in)
	}
}

func TestStripChars(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", StripChars("  (abc)!\n"))
	assert.Equal(t, "a.b", StripChars("1. a.b"))
	assert.Equal(t, "Český", StripChars("—Český✓"))
	assert.Empty(t, StripChars("12:30"))

	once := StripChars(`"[x]"`)
	assert.Equal(t, once, StripChars(once))
}

func TestLower(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "čeština", Lower("ČEŠTINA"))
	assert.Equal(t, "abc", Lower("AbC"))
	assert.Empty(t, Lower(""))
	assert.Equal(t, "i̇", Lower("İ"))
}

func TestIsUpper(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"ABC", true},
		{"ABC 123", true},
		{"ÁÉÍ", true},
		{"Abc", false},
		{"ǅ", false},
		{"123", false},
		{"", false},
		{"日本", false},
		{"Aⓐ", false},
		{"ⒶⒷ", true},
		{"Ⅻ", true},
		{"ⅻ", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsUpper(tt.in), tt.in)
	}
}

func TestLen(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, Len("ř"))
	assert.Equal(t, 3, Len("abc"))
	assert.Zero(t, Len(""))
}
