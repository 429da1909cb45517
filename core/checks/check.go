// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package checks defines the contract shared by translation quality checks
and the machinery to run them.

A check looks at one unit at a time. Anything it wants to remember while a
validation pass is running goes into the caller-supplied [CacheSlot], never
into the check itself, so a single check value can serve any number of
concurrent passes.
*/
package checks

import (
	"codeberg.org/transqa/transqa/i18n"
)

// Unit is a translatable string as seen by a check. Checks never modify it.
//
// Sources holds the singular source and, for plural units, the plural
// source. Targets holds one translation per plural form of the target
// language.
type Unit interface {
	ID() string
	Sources() []string
	Targets() []string
	Flags() Flags
	LanguageCode() string
}

// Meta describes a check for reporting.
type Meta struct {
	ID          string
	Name        i18n.MsgKey
	Description i18n.MsgKey
}

// Check is a single quality rule.
type Check interface {
	// ID returns the stable identifier used in flags, cache keys and
	// configuration.
	ID() string

	Meta() Meta

	// CheckSingle reports whether the given source and target pair has an
	// issue. It must not fail on any input; when in doubt it returns false.
	CheckSingle(source, target string, unit Unit, slot CacheSlot) bool
}

// ShouldSkip reports whether unit opted out of check with an
// "ignore-<id>" flag.
func ShouldSkip(check Check, unit Unit) bool {
	if unit == nil {
		return false
	}

	return unit.Flags().Has(IgnorePrefix + check.ID())
}

// CheckUnit runs check over every plural form of unit. The singular target
// is compared with the singular source, the remaining targets with the
// plural source. The first failing form decides.
//
// Units without a translation are not checked.
func CheckUnit(check Check, unit Unit, store Store) bool {
	if unit == nil || ShouldSkip(check, unit) {
		return false
	}

	sources := unit.Sources()
	targets := unit.Targets()

	if len(sources) == 0 || !translated(targets) {
		return false
	}

	if check.CheckSingle(sources[0], targets[0], unit, CacheSlot{Store: store, Form: 0}) {
		return true
	}

	if len(sources) < 2 {
		return false
	}

	plural := CacheSlot{Store: store, Form: 1}

	for _, target := range targets[1:] {
		if check.CheckSingle(sources[1], target, unit, plural) {
			return true
		}
	}

	return false
}

func translated(targets []string) bool {
	for _, t := range targets {
		if t != "" {
			return true
		}
	}

	return false
}
