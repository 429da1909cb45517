// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package same implements the check for translations left identical to their
source string.

Identical strings are only reported when the source has something that
actually needs translating. Placeholders, addresses, numbers, copyright
notices, acronyms and words from the lexicon are expected to stay the same
and never trigger the check.
*/
package same

import (
	"strings"

	"codeberg.org/transqa/transqa/core/checks"
	"codeberg.org/transqa/transqa/core/lexicon"
	"codeberg.org/transqa/transqa/core/normalize"
	"codeberg.org/transqa/transqa/core/patterns"
	"codeberg.org/transqa/transqa/i18n"
)

// CheckID is the identifier of the check.
const CheckID = "same"

var meta = checks.Meta{
	ID:          CheckID,
	Name:        i18n.MsgKey("Not translated"),
	Description: i18n.MsgKey("Source and translated strings are same"),
}

// Check flags translations that are identical to the source.
// It is safe for concurrent use.
type Check struct {
	normalizer      *normalize.Normalizer
	lexicon         *lexicon.Lexicon
	sourceLanguages []string
}

// Option configures a Check.
type Option func(*Check)

// WithSourceLanguages sets the languages the project is written in.
// Units in these languages are never reported. The default is "en".
func WithSourceLanguages(codes ...string) Option {
	return func(c *Check) {
		c.sourceLanguages = append([]string(nil), codes...)
	}
}

// New returns a Check using the given patterns and lexicon.
func New(reg *patterns.Registry, lex *lexicon.Lexicon, opts ...Option) *Check {
	c := &Check{
		normalizer:      normalize.New(reg),
		lexicon:         lex,
		sourceLanguages: []string{"en"},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Check) ID() string {
	return CheckID
}

func (c *Check) Meta() checks.Meta {
	return meta
}

// CheckSingle reports whether target is an unchanged copy of a source that
// should have been translated.
func (c *Check) CheckSingle(source, target string, unit checks.Unit, slot checks.CacheSlot) bool {
	if checks.IsLanguage(unit, c.sourceLanguages...) {
		return false
	}

	if normalize.Len(source) <= 1 && normalize.Len(target) <= 1 {
		return false
	}

	if normalize.IsUpper(source) && normalize.IsUpper(target) {
		return false
	}

	if c.ShouldIgnore(source, unit, slot) {
		return false
	}

	return source == target
}

// ShouldIgnore reports whether source consists only of text that is
// expected to stay untranslated. The verdict depends on the source alone
// and is cached in slot for the unit.
func (c *Check) ShouldIgnore(source string, unit checks.Unit, slot checks.CacheSlot) bool {
	if cached, ok := checks.GetCache(c, unit, slot); ok {
		if v, ok := cached.(bool); ok {
			return v
		}
	}

	var flags []string
	if unit != nil {
		flags = unit.Flags()
	}

	result := c.shouldIgnore(source, flags)

	checks.SetCache(c, unit, slot, result)

	return result
}

func (c *Check) shouldIgnore(source string, flags []string) bool {
	lower := normalize.Lower(source)

	switch {
	case normalize.Len(strings.Trim(source, normalize.NumericChars)) <= 1:
		// 1:4, 1, 3, 10
		return true
	case strings.Contains(lower, "(c) copyright"):
		return true
	case strings.ContainsRune(source, '©'):
		return true
	}

	stripped := c.normalizer.Normalize(lower, flags)
	if normalize.Len(stripped) <= 1 {
		return true
	}

	for _, word := range strings.Fields(stripped) {
		if !c.ignorableWord(word) {
			return false
		}
	}

	return true
}

func (c *Check) ignorableWord(word string) bool {
	word = normalize.StripChars(word)

	return normalize.Len(word) <= 1 || c.lexicon.Contains(word)
}
