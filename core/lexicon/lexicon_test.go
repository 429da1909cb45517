// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

package lexicon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	lex, err := Default()
	require.NoError(t, err)

	assert.Greater(t, lex.Len(), 700)
	assert.Equal(t,
		[]string{"alphabet", "architectures", "languages", "months", "roman", "terms", "weekdays"},
		lex.Categories())
	assert.Equal(t, 4, lex.CategorySize("roman"))
	assert.Equal(t, 7, lex.CategorySize("weekdays"))

	for _, w := range []string{
		"linux", "Linux", "KERNEL", "alarm", "fax", "po", "gettext",
		"bokmål", "n'ko", "no", "null", "x86_64", "m68k",
		"abcdefghijklmnopqrstuvwxyz", "iv", "jan", "czech",
	} {
		assert.True(t, lex.Contains(w), w)
	}

	for _, w := range []string{"testing", "retezec", "please", "file", "see", "", "linux kernel"} {
		assert.False(t, lex.Contains(w), w)
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("- just\n- a list\n"))
	require.ErrorIs(t, err, ErrDecode)

	_, err = Parse([]byte("terms: []\nmonths:\n  - \"  \"\n"))
	require.ErrorIs(t, err, ErrEmpty)

	lex, err := Parse(nil)
	require.Error(t, err)
	assert.Nil(t, lex)
}

func TestWithIsCopy(t *testing.T) {
	t.Parallel()

	base := New("Alpha", "beta")
	extended := base.With("Gamma", " ")

	assert.True(t, base.Contains("alpha"))
	assert.False(t, base.Contains("gamma"))
	assert.True(t, extended.Contains("gamma"))
	assert.True(t, extended.Contains("BETA"))
	assert.Equal(t, 2, base.Len())
	assert.Equal(t, 3, extended.Len())
	assert.Equal(t, 3, extended.CategorySize(ExtraCategory))
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "words.yaml")

	require.NoError(t, os.WriteFile(path, []byte("brands:\n  - Weblate\n  - Gammu\n"), 0o600))

	lex, err := LoadFile(path)
	require.NoError(t, err)
	assert.True(t, lex.Contains("weblate"))
	assert.Equal(t, []string{"brands"}, lex.Categories())

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}
