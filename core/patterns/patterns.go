// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package patterns holds the compiled matchers used to find text that is
expected to stay verbatim in a translation: format string placeholders for
several host languages, reStructuredText markup, and incidental noise such
as e-mail addresses, URLs, domains and paths.

A [Registry] is built once at start-up with [NewRegistry] and is safe for
concurrent use afterwards.
*/
package patterns

import (
	"errors"
	"fmt"
	"regexp"
)

// Format flags understood by the registry.
const (
	PythonFormat      = "python-format"
	PythonBraceFormat = "python-brace-format"
	PHPFormat         = "php-format"
	CFormat           = "c-format"
	RSTText           = "rst-text"
)

// FormatPriority is the order in which format flags are consulted.
// A unit carrying several of them is stripped with the first one only.
var FormatPriority = []string{
	PythonFormat,
	PythonBraceFormat,
	PHPFormat,
	CFormat,
	RSTText,
}

// ErrInvalidPattern is returned when a matcher fails to compile.
var ErrInvalidPattern = errors.New("invalid pattern")

// Matcher removes every occurrence of a pattern from a string.
type Matcher struct {
	name string
	re   *regexp.Regexp
}

// Name returns the registry name of the matcher.
func (m *Matcher) Name() string {
	return m.name
}

// String returns the source of the compiled expression.
func (m *Matcher) String() string {
	return m.re.String()
}

// MatchString reports whether s contains any match.
func (m *Matcher) MatchString(s string) bool {
	return m.re.MatchString(s)
}

// Strip replaces all matches in s with the empty string.
func (m *Matcher) Strip(s string) string {
	return m.re.ReplaceAllLiteralString(s, "")
}

// Registry is an immutable set of format and noise matchers.
type Registry struct {
	formats map[string]*Matcher
	noise   []*Matcher
}

// NewRegistry compiles the built-in matchers followed by any extra noise
// expressions. Extra expressions are applied after the built-in noise
// matchers, in the order given.
//
// It returns an error wrapping [ErrInvalidPattern] if any expression
// does not compile.
func NewRegistry(extraNoise ...string) (*Registry, error) {
	reg := &Registry{
		formats: make(map[string]*Matcher, len(formatSources)),
		noise:   make([]*Matcher, 0, len(noiseSources)+len(extraNoise)),
	}

	for _, flag := range FormatPriority {
		m, err := compile(flag, formatSources[flag])
		if err != nil {
			return nil, err
		}

		reg.formats[flag] = m
	}

	for _, src := range noiseSources {
		m, err := compile(src.name, src.expr)
		if err != nil {
			return nil, err
		}

		reg.noise = append(reg.noise, m)
	}

	for i, expr := range extraNoise {
		m, err := compile(fmt.Sprintf("extra-%d", i), expr)
		if err != nil {
			return nil, err
		}

		reg.noise = append(reg.noise, m)
	}

	return reg, nil
}

// MustRegistry is like [NewRegistry] but panics on error.
func MustRegistry(extraNoise ...string) *Registry {
	reg, err := NewRegistry(extraNoise...)
	if err != nil {
		panic(err)
	}

	return reg
}

// FormatMatcher returns the matcher for a single format flag, or nil when
// the flag is not a known format.
func (r *Registry) FormatMatcher(flag string) *Matcher {
	return r.formats[flag]
}

// ForFlags returns the matcher of the highest priority format flag present
// in flags, or nil when none is present.
func (r *Registry) ForFlags(flags []string) *Matcher {
	for _, flag := range FormatPriority {
		for _, f := range flags {
			if f == flag {
				return r.formats[flag]
			}
		}
	}

	return nil
}

// Noise returns the noise matchers in application order.
//
// The returned slice is a copy and is safe to retain.
func (r *Registry) Noise() []*Matcher {
	out := make([]*Matcher, len(r.noise))
	copy(out, r.noise)

	return out
}

func compile(name, expr string) (*Matcher, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidPattern, name, err)
	}

	return &Matcher{name: name, re: re}, nil
}
