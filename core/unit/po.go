// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

package unit

import (
	"bufio"
	"bytes"
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/leonelquinteros/gotext"
	"golang.org/x/text/language"

	"codeberg.org/transqa/transqa/core/checks"
)

// poEntry is what the catalogue parser does not keep: the order of the
// entries and their flag comments.
type poEntry struct {
	context string
	id      string
	plural  string
	flags   checks.Flags
}

func parsePO(data []byte, name string, opts Options) ([]*Unit, error) {
	entries, err := scanPO(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	po := gotext.NewPo()
	po.Parse(data)

	domain := po.GetDomain()
	translations := domain.GetTranslations()
	contexts := domain.GetCtxTranslations()

	doc := defaults{
		language: domain.Language,
		file:     name,
	}
	if doc.language == "" {
		doc.language = languageFromName(name)
	}

	var records []Record

	for _, e := range entries {
		if e.id == "" {
			continue
		}

		r := Record{
			Context: e.context,
			Source:  e.id,
			Plural:  e.plural,
			Flags:   FlagList(e.flags),
		}

		tr := translations[e.id]
		if e.context != "" {
			tr = contexts[e.context][e.id]
		}

		if tr == nil {
			continue
		}

		r.Targets = forms(tr.Trs)
		records = append(records, r)
	}

	return buildAll(records, doc, opts)
}

// forms orders the plural forms of a translation by index.
func forms(trs map[int]string) []string {
	if len(trs) == 0 {
		return []string{""}
	}

	keys := make([]int, 0, len(trs))
	for k := range trs {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, trs[k])
	}

	return out
}

// languageFromName guesses the language from a file name such as
// "pt_BR.po" or "messages.cs.po".
func languageFromName(name string) string {
	stem := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	if i := strings.LastIndexByte(stem, '.'); i >= 0 {
		stem = stem[i+1:]
	}

	if _, err := language.Parse(strings.ReplaceAll(stem, "_", "-")); err != nil {
		return ""
	}

	return stem
}

// scanPO walks a catalogue and returns its entries in file order together
// with their "#," flags. Obsolete entries are skipped.
func scanPO(data []byte) ([]poEntry, error) {
	var (
		entries []poEntry
		cur     poEntry
		field   *string
		inEntry bool
		seenStr bool
	)

	flush := func() {
		if inEntry {
			entries = append(entries, cur)
		}

		cur = poEntry{}
		field = nil
		inEntry = false
		seenStr = false
	}

	// Anything but a continuation line after a msgstr starts the next entry.
	next := func() {
		if seenStr {
			flush()
		}
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		var err error

		switch {
		case line == "":
			field = nil
		case strings.HasPrefix(line, "#,"):
			next()

			cur.flags = cur.flags.Merge(checks.ParseFlags(line[2:]))
		case strings.HasPrefix(line, "#"):
			// translator, extracted, reference and obsolete lines
			next()
		case strings.HasPrefix(line, "msgctxt "):
			next()

			field = &cur.context
			err = appendQuoted(field, line[len("msgctxt "):])
		case strings.HasPrefix(line, "msgid_plural "):
			field = &cur.plural
			err = appendQuoted(field, line[len("msgid_plural "):])
		case strings.HasPrefix(line, "msgid "):
			next()

			inEntry = true
			field = &cur.id
			err = appendQuoted(field, line[len("msgid "):])
		case strings.HasPrefix(line, "msgstr"):
			seenStr = true
			field = nil
		case strings.HasPrefix(line, `"`) && field != nil:
			err = appendQuoted(field, line)
		}

		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	flush()

	return entries, nil
}

func appendQuoted(dst *string, quoted string) error {
	s, err := strconv.Unquote(strings.TrimSpace(quoted))
	if err != nil {
		return fmt.Errorf("bad string %s: %w", quoted, err)
	}

	*dst += s

	return nil
}
