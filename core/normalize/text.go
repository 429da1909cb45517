// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

package normalize

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// BoundaryChars are trimmed from both ends of a string or word by [StripChars].
const BoundaryChars = " ,./<>?;'\\:\"|[]{}`~!@#$%^&*()-=_+0123456789\n\r✓—"

// NumericChars are the characters a purely numeric string like "1:4" or
// "1, 3, 10" is built from.
const NumericChars = "0123456789:/,."

// A Caser is stateful, so each goroutine takes its own from the pool.
var lowerPool = sync.Pool{
	New: func() any {
		c := cases.Lower(language.Und)

		return &c
	},
}

// Lower returns s with the full Unicode lower case mapping applied,
// including mappings that change the string length.
func Lower(s string) string {
	if s == "" {
		return s
	}

	c := lowerPool.Get().(*cases.Caser)
	defer lowerPool.Put(c)

	return c.String(s)
}

// IsUpper reports whether s has at least one cased character and none of
// its cased characters are lower or title case. Cased characters follow
// the Unicode Lowercase and Uppercase properties, so symbols such as ⓐ
// and Ⅻ count.
func IsUpper(s string) bool {
	cased := false

	for _, r := range s {
		switch {
		case unicode.IsLower(r), unicode.IsTitle(r), unicode.Is(unicode.Other_Lowercase, r):
			return false
		case unicode.IsUpper(r), unicode.Is(unicode.Other_Uppercase, r):
			cased = true
		}
	}

	return cased
}

// Len returns the number of code points in s.
func Len(s string) int {
	return utf8.RuneCountInString(s)
}

// StripChars trims [BoundaryChars] from both ends of s. Interior
// characters are left alone.
func StripChars(s string) string {
	return strings.Trim(s, BoundaryChars)
}
