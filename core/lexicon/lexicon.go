// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package lexicon provides the set of words that are expected to stay the same
in a source string and its translation: technical jargon, brand names,
language names, month and weekday abbreviations, Roman numerals and CPU
architectures.

The built-in word list lives in data/same.yaml and is embedded into the
binary. Deployments may replace it with their own file or add words on top
of it; the list is policy, not code.
*/
package lexicon

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"

	"codeberg.org/transqa/transqa/core/normalize"
)

// ExtraCategory is the category name used for words added with [Lexicon.With].
const ExtraCategory = "extra"

//go:embed data/same.yaml
var defaultData []byte

var (
	// ErrEmpty is returned when a word list yields no usable entries.
	ErrEmpty = errors.New("lexicon has no words")

	// ErrDecode is returned when a word list is not valid YAML of the expected shape.
	ErrDecode = errors.New("failed to decode lexicon")
)

// Lexicon is an immutable, case-folded word set.
// It is safe for concurrent use.
type Lexicon struct {
	words      map[string]struct{}
	categories map[string]int
}

// Default returns the built-in lexicon.
func Default() (*Lexicon, error) {
	return Parse(defaultData)
}

// LoadFile reads a lexicon from a YAML file mapping category names to word lists.
func LoadFile(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the operator's configuration
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon file %s: %w", path, err)
	}

	lex, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return lex, nil
}

// Parse decodes a YAML document of the form
//
//	category:
//	  - word
//	  - other word
//
// into a Lexicon.
func Parse(data []byte) (*Lexicon, error) {
	var groups map[string][]string
	if err := yaml.Unmarshal(data, &groups); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	lex := &Lexicon{
		words:      make(map[string]struct{}),
		categories: make(map[string]int, len(groups)),
	}

	for category, words := range groups {
		lex.add(category, words)
	}

	if len(lex.words) == 0 {
		return nil, ErrEmpty
	}

	return lex, nil
}

// New builds a lexicon from the given words under [ExtraCategory].
func New(words ...string) *Lexicon {
	lex := &Lexicon{
		words:      make(map[string]struct{}, len(words)),
		categories: make(map[string]int, 1),
	}

	lex.add(ExtraCategory, words)

	return lex
}

// With returns a copy of l extended with words. l itself is not modified.
func (l *Lexicon) With(words ...string) *Lexicon {
	out := &Lexicon{
		words:      make(map[string]struct{}, len(l.words)+len(words)),
		categories: make(map[string]int, len(l.categories)+1),
	}

	for w := range l.words {
		out.words[w] = struct{}{}
	}

	for c, n := range l.categories {
		out.categories[c] = n
	}

	out.add(ExtraCategory, words)

	return out
}

// Contains reports whether word is in the lexicon. The lookup is exact
// after case folding; no stemming or fuzzy matching is performed.
func (l *Lexicon) Contains(word string) bool {
	if _, ok := l.words[word]; ok {
		return true
	}

	_, ok := l.words[normalize.Lower(word)]

	return ok
}

// Len returns the number of distinct words.
func (l *Lexicon) Len() int {
	return len(l.words)
}

// Categories returns the category names, sorted.
func (l *Lexicon) Categories() []string {
	out := make([]string, 0, len(l.categories))
	for c := range l.categories {
		out = append(out, c)
	}

	sort.Strings(out)

	return out
}

// CategorySize returns how many entries were listed under category,
// duplicates included.
func (l *Lexicon) CategorySize(category string) int {
	return l.categories[category]
}

func (l *Lexicon) add(category string, words []string) {
	for _, w := range words {
		w = normalize.Lower(strings.TrimSpace(w))
		if w == "" {
			continue
		}

		l.words[w] = struct{}{}
		l.categories[category]++
	}
}
