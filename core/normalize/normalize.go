// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package normalize reduces a string to the part of it that actually needs
translating. Format placeholders, e-mail addresses, URLs, channel names,
domains, paths, templates and a handful of HTML entities are removed, then
punctuation is trimmed from both ends.

Every stage is a named [Step] so each can be exercised on its own. The
order of the steps matters and is fixed by [New].
*/
package normalize

import (
	"strings"

	"codeberg.org/transqa/transqa/core/patterns"
)

// Step is one stage of the noise pipeline.
type Step struct {
	Name  string
	Apply func(string) string
}

// entities are replaced one after another, in this order.
var entities = [][2]string{
	{"&nbsp;", " "},
	{"&rsaquo;", `"`},
	{"&lt;", "<"},
	{"&gt;", ">"},
	{"&amp;", "&"},
	{"&ldquo;", `"`},
	{"&rdquo;", `"`},
	{"&times;", "."},
	{"&quot;", `"`},
}

// separators are turned into spaces so words joined by them split apart.
var separators = strings.NewReplacer(
	"_", " ",
	",", " ",
	"\\", " ",
	"/", " ",
)

// Normalizer strips untranslatable parts from strings.
// It holds no mutable state and is safe for concurrent use.
type Normalizer struct {
	patterns *patterns.Registry
	steps    []Step
}

// New returns a Normalizer backed by reg.
func New(reg *patterns.Registry) *Normalizer {
	n := &Normalizer{patterns: reg}

	for _, m := range reg.Noise() {
		n.steps = append(n.steps, Step{Name: m.Name(), Apply: m.Strip})
	}

	n.steps = append(n.steps, Step{Name: "entities", Apply: ReplaceEntities})

	return n
}

// Steps returns the noise pipeline in application order.
//
// The returned slice is a copy and is safe to retain.
func (n *Normalizer) Steps() []Step {
	out := make([]Step, len(n.steps))
	copy(out, n.steps)

	return out
}

// StripFormat removes the placeholders of the highest priority format flag
// in flags. Text is returned unchanged when no known format flag is present.
func (n *Normalizer) StripFormat(text string, flags []string) string {
	m := n.patterns.ForFlags(flags)
	if m == nil {
		return text
	}

	return m.Strip(text)
}

// StripNoise runs the noise pipeline over text.
func (n *Normalizer) StripNoise(text string) string {
	for _, step := range n.steps {
		text = step.Apply(text)
	}

	return text
}

// Normalize returns the translatable residue of text: format placeholders
// and noise removed, boundary characters trimmed, and interior separators
// replaced by spaces.
func (n *Normalizer) Normalize(text string, flags []string) string {
	stripped := StripChars(n.StripNoise(n.StripFormat(text, flags)))

	return separators.Replace(stripped)
}

// ReplaceEntities decodes the HTML entities commonly found in UI strings.
// Unknown entities are left as they are.
func ReplaceEntities(text string) string {
	if !strings.Contains(text, "&") {
		return text
	}

	for _, e := range entities {
		text = strings.ReplaceAll(text, e[0], e[1])
	}

	return text
}
