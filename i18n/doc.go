// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package i18n provides internationalisation utilities backed by GNU gettext
.po catalogues. It translates source message IDs (msgids) across locales
and supports both context and plural forms.

It is used for everything transqa shows to people: check names and
descriptions, and the summary lines of text reports.

# Quick start

Use the original English text as the msgid; do not invent keys.

	ctx = i18n.WithTag(ctx, i18n.Match("cs_CZ.UTF-8"))

	i18n.Tr(ctx, "Not translated")
	i18n.TrC(ctx, "report", "Source")
	i18n.TrN(ctx, "{{.Count}} unit failed", "{{.Count}} units failed", n, "Count", n)

Values that are declared ahead of time, such as check metadata, use
[MsgKey] and are translated when displayed:

	var name = i18n.MsgKey("Not translated")
	name.Tr(ctx)

# Missing translations

By default, missing translations return the msgid unchanged. When
StrictMissingKeys is enabled, missing lookups are logged once
per locale+key and the returned text is visibly wrapped as "⟦...⟧".

# Formatting

Translations can include placeholders that are processed by Go's standard
text/template package. Provide substitutions as alternating key-value pairs
to any of the Tr functions.

# Catalogues

Catalogues live in po/ and are embedded into the binary. po/transqa.pot is
regenerated with cmd/i18n_extract.
*/
package i18n
