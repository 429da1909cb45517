// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"context"
	"os"
	"strings"

	"golang.org/x/text/language"
)

type contextKeyType struct{}

var tagKey = contextKeyType{}

// localeEnv lists the environment variables consulted by [FromEnv], in the
// order gettext gives them precedence.
var localeEnv = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// WithTag stores t in ctx and returns a derived context that carries it.
//
// Passing the zero value of [language.Tag] clears any existing value.
// The ctx must not be nil.
func WithTag(ctx context.Context, t language.Tag) context.Context {
	return context.WithValue(ctx, tagKey, t)
}

// TagFrom returns the language tag stored in ctx, or the tag for [BaseLocale]
// if none is present. It never returns the zero value of [language.Tag].
func TagFrom(ctx context.Context) language.Tag {
	if ctx != nil {
		if t, _ := ctx.Value(tagKey).(language.Tag); t != (language.Tag{}) {
			return t
		}
	}

	return baseTag
}

// Match returns the loaded locale that best fits the preferences, most
// preferred first. Each preference may be a BCP 47 tag, an Accept-Language
// style list, or a POSIX locale name such as "cs_CZ.UTF-8".
//
// If nothing matches, or Setup has not been called, Match returns the tag
// for [BaseLocale].
func Match(preferred ...string) language.Tag {
	if matcher == nil {
		return baseTag
	}

	cleaned := make([]string, 0, len(preferred))

	for _, p := range preferred {
		if p = posixToBCP47(p); p != "" {
			cleaned = append(cleaned, p)
		}
	}

	if len(cleaned) == 0 {
		return baseTag
	}

	_, i := language.MatchStrings(matcher, cleaned...)

	return supportedTags[i]
}

// FromEnv matches the locale named by the usual gettext environment variables.
func FromEnv() language.Tag {
	var preferred []string

	for _, name := range localeEnv {
		if v := os.Getenv(name); v != "" {
			preferred = append(preferred, v)
		}
	}

	return Match(preferred...)
}

// posixToBCP47 turns "cs_CZ.UTF-8@euro" into "cs-CZ". The "C" and "POSIX"
// locales map to nothing. Accept-Language lists are returned as they are.
func posixToBCP47(s string) string {
	s = strings.TrimSpace(s)
	if strings.ContainsAny(s, ",;") {
		return s
	}

	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}

	if s == "C" || s == "POSIX" {
		return ""
	}

	return strings.ReplaceAll(s, "_", "-")
}
