// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

package checks

import (
	"strings"

	"golang.org/x/text/language"
)

// IsLanguage reports whether the primary language of unit matches one of
// codes. Regional and script variants count as their base language, so a
// "pt_BR" unit matches "pt".
func IsLanguage(unit Unit, codes ...string) bool {
	if unit == nil {
		return false
	}

	lang := PrimaryLanguage(unit.LanguageCode())
	if lang == "" {
		return false
	}

	for _, code := range codes {
		if PrimaryLanguage(code) == lang {
			return true
		}
	}

	return false
}

// PrimaryLanguage returns the lower-cased primary subtag of a language code.
// Gettext style codes such as "sr_RS@latin" are accepted.
func PrimaryLanguage(code string) string {
	code = strings.TrimSpace(code)
	if at := strings.IndexByte(code, '@'); at >= 0 {
		code = code[:at]
	}

	code = strings.ReplaceAll(code, "_", "-")
	if code == "" {
		return ""
	}

	if tag, err := language.Parse(code); err == nil {
		base, _ := tag.Base()

		return base.String()
	}

	head, _, _ := strings.Cut(code, "-")

	return strings.ToLower(head)
}
