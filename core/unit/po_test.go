// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

package unit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/transqa/transqa/core/checks"
)

const poInput = `# Czech translation.
msgid ""
msgstr ""
"Project-Id-Version: demo\n"
"Language: cs\n"
"Content-Type: text/plain; charset=UTF-8\n"
"Plural-Forms: nplurals=3; plural=(n==1) ? 0 : (n>=2 && n<=4) ? 1 : 2;\n"

#: main.c:10
#, c-format
msgid "%d file"
msgid_plural "%d files"
msgstr[0] "%d soubor"
msgstr[1] "%d soubory"
msgstr[2] "%d files"

#. Shown in the title bar
#, python-format, fuzzy
msgid ""
"Long "
"message"
msgstr "Long message"

msgid "Untranslated"
msgstr ""

msgctxt "menu"
msgid "Open"
msgstr "Otevřít"

#~ msgid "Obsolete"
#~ msgstr "Zastaralé"
`

func TestScanPO(t *testing.T) {
	t.Parallel()

	entries, err := scanPO([]byte(poInput))
	require.NoError(t, err)

	want := []poEntry{
		{id: ""},
		{id: "%d file", plural: "%d files", flags: checks.Flags{"c-format"}},
		{id: "Long message", flags: checks.Flags{"python-format", "fuzzy"}},
		{id: "Untranslated"},
		{context: "menu", id: "Open"},
	}

	if diff := cmp.Diff(want, entries, cmp.AllowUnexported(poEntry{})); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePO(t *testing.T) {
	t.Parallel()

	units, err := Parse([]byte(poInput), "po/messages.po", Options{})
	require.NoError(t, err)

	want := []view{
		{
			Sources:  []string{"%d file", "%d files"},
			Targets:  []string{"%d soubor", "%d soubory", "%d files"},
			Flags:    checks.Flags{"c-format"},
			Language: "cs",
		},
		{
			Sources:  []string{"Long message"},
			Targets:  []string{"Long message"},
			Flags:    checks.Flags{"python-format", "fuzzy"},
			Language: "cs",
		},
		{
			Sources:  []string{"Untranslated"},
			Targets:  []string{""},
			Language: "cs",
		},
		{
			Context:  "menu",
			Sources:  []string{"Open"},
			Targets:  []string{"Otevřít"},
			Language: "cs",
		},
	}

	if diff := cmp.Diff(want, views(units)); diff != "" {
		t.Errorf("units mismatch (-want +got):\n%s", diff)
	}
}

func TestLanguageFromName(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"cs.po":           "cs",
		"locale/pt_BR.po": "pt_BR",
		"messages.de.po":  "de",
		"messages.po":     "",
		"translations.po": "",
		"/tmp/zh_Hant.po": "zh_Hant",
	}

	for name, want := range tests {
		assert.Equal(t, want, languageFromName(name), name)
	}
}

func TestParsePOContextWithPluralForms(t *testing.T) {
	t.Parallel()

	const arabic = `msgid ""
msgstr ""
"Language: ar\n"
"Plural-Forms: nplurals=6; plural=n==0 ? 0 : n==1 ? 1 : n==2 ? 2 : n%100>=3 && n%100<=10 ? 3 : n%100>=11 ? 4 : 5;\n"

msgctxt "menu"
msgid "Open"
msgstr "فتح"

msgctxt "menu"
msgid "%d file"
msgid_plural "%d files"
msgstr[0] "a"
msgstr[1] "b"
msgstr[2] "c"
msgstr[3] "d"
msgstr[4] "e"
msgstr[5] "f"
`

	units, err := Parse([]byte(arabic), "ar.po", Options{})
	require.NoError(t, err)

	want := []view{
		{Context: "menu", Sources: []string{"Open"}, Targets: []string{"فتح"}, Language: "ar"},
		{
			Context:  "menu",
			Sources:  []string{"%d file", "%d files"},
			Targets:  []string{"a", "b", "c", "d", "e", "f"},
			Language: "ar",
		},
	}

	if diff := cmp.Diff(want, views(units)); diff != "" {
		t.Errorf("units mismatch (-want +got):\n%s", diff)
	}
}
