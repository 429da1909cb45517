// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package unit loads translation units from files and exposes them to the
checks.

Three input formats are understood: gettext PO catalogues, and YAML or JSON
documents of the form

	language: cs
	flags: c-format
	units:
	  - source: "%d file"
	    plural: "%d files"
	    targets: ["%d soubor", "%d soubory", "%d souborů"]
	  - id: greeting
	    source: Hello
	    target: Ahoj
	    flags: ignore-same

A JSON or YAML document may also be a bare list of units.
*/
package unit

import (
	"fmt"

	"github.com/google/uuid"

	"codeberg.org/transqa/transqa/core/checks"
)

// idNamespace scopes the content-derived unit IDs.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceDNS, []byte("transqa.codeberg.org"))

// Unit is a single translatable string. It implements [checks.Unit].
type Unit struct {
	id       string
	context  string
	sources  []string
	targets  []string
	flags    checks.Flags
	language string
	file     string
}

var _ checks.Unit = (*Unit)(nil)

func (u *Unit) ID() string           { return u.id }
func (u *Unit) Sources() []string    { return u.sources }
func (u *Unit) Targets() []string    { return u.targets }
func (u *Unit) Flags() checks.Flags  { return u.flags }
func (u *Unit) LanguageCode() string { return u.language }

// Context returns the message context, if any.
func (u *Unit) Context() string { return u.context }

// File returns the path the unit was loaded from.
func (u *Unit) File() string { return u.file }

// Record is the decoded form of a unit in YAML and JSON input.
type Record struct {
	ID       string   `yaml:"id,omitempty"`
	Context  string   `yaml:"context,omitempty"`
	Source   string   `yaml:"source"`
	Plural   string   `yaml:"plural,omitempty"`
	Target   string   `yaml:"target,omitempty"`
	Targets  []string `yaml:"targets,omitempty"`
	Flags    FlagList `yaml:"flags,omitempty"`
	Language string   `yaml:"language,omitempty"`
}

// defaults are the document level values a record falls back to.
type defaults struct {
	language string
	flags    checks.Flags
	file     string
}

// build turns r into a Unit. An explicit language in opts wins over
// everything else; otherwise the record's own language is used, then the
// document's.
func (r Record) build(doc defaults, opts Options) *Unit {
	u := &Unit{
		context: r.Context,
		sources: []string{r.Source},
		file:    doc.file,
	}

	if r.Plural != "" {
		u.sources = append(u.sources, r.Plural)
	}

	switch {
	case len(r.Targets) > 0:
		u.targets = append([]string(nil), r.Targets...)
	default:
		u.targets = []string{r.Target}
	}

	u.flags = checks.Flags(r.Flags).Merge(doc.flags).Merge(opts.Flags)
	if len(u.flags) == 0 {
		u.flags = nil
	}

	switch {
	case opts.Language != "":
		u.language = opts.Language
	case r.Language != "":
		u.language = r.Language
	default:
		u.language = doc.language
	}

	u.id = r.ID
	if u.id == "" {
		u.id = contentID(u.context, u.sources, u.flags)
	}

	return u
}

// contentID derives a stable ID from everything a check's cached verdict
// may depend on, so equal units share cached results.
func contentID(context string, sources []string, flags checks.Flags) string {
	data := make([]byte, 0, 64)
	data = append(data, context...)
	data = append(data, 0x04)

	for _, s := range sources {
		data = append(data, s...)
		data = append(data, 0)
	}

	data = append(data, flags.String()...)

	return uuid.NewSHA1(idNamespace, data).String()
}

// FlagList accepts flags written either as a comma separated string or as
// a list.
type FlagList checks.Flags

func (f *FlagList) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case nil:
		*f = nil
	case string:
		*f = FlagList(checks.ParseFlags(v))
	case []any:
		tokens := make([]string, 0, len(v))
		for _, tok := range v {
			tokens = append(tokens, fmt.Sprint(tok))
		}

		*f = FlagList(checks.NewFlags(tokens...))
	default:
		return fmt.Errorf("%w: flags must be a string or a list", ErrDecode)
	}

	return nil
}
