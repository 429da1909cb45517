// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// BaseLocale is the locale of the msgids themselves.
const BaseLocale = "en"

var baseTag = language.Make(BaseLocale)

// Languages returns the display locales Setup loaded, the base locale
// included, ordered by tag. It returns nil before Setup.
func Languages() []language.Tag {
	if matcher == nil {
		return nil
	}

	out := slices.Clone(supportedTags)
	slices.SortFunc(out, func(a, b language.Tag) int {
		return strings.Compare(a.String(), b.String())
	})

	return out
}
