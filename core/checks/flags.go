// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

package checks

import (
	"slices"
	"strings"
)

// IgnorePrefix marks a flag that disables a single check for a unit,
// as in "ignore-same".
const IgnorePrefix = "ignore-"

// Flags is an ordered, de-duplicated list of unit flags such as
// "python-format" or "ignore-same".
type Flags []string

// ParseFlags splits a comma separated flag list. Surrounding whitespace is
// dropped, empty items are skipped and repeated flags are kept once, in
// the position they first appear.
func ParseFlags(s string) Flags {
	return NewFlags(strings.Split(s, ",")...)
}

// NewFlags builds a Flags value from individual tokens.
func NewFlags(tokens ...string) Flags {
	var out Flags

	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" || slices.Contains(out, tok) {
			continue
		}

		out = append(out, tok)
	}

	return out
}

// Has reports whether flag is present.
func (f Flags) Has(flag string) bool {
	return slices.Contains(f, flag)
}

// Merge returns f followed by the flags in other that f lacks.
// Neither f nor other is modified.
func (f Flags) Merge(other Flags) Flags {
	out := make(Flags, 0, len(f)+len(other))
	out = append(out, f...)

	for _, flag := range other {
		if !out.Has(flag) {
			out = append(out, flag)
		}
	}

	return out
}

// String joins the flags the way they are written in PO files.
func (f Flags) String() string {
	return strings.Join(f, ", ")
}
