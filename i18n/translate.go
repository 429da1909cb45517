// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"text/template"

	"github.com/leonelquinteros/gotext"
	"golang.org/x/text/language"
)

// templates holds parsed placeholder templates keyed by their text.
var templates sync.Map

// Tr returns the translation of msgid, which is the original English text.
// Placeholders such as {{.Name}} are filled from alternating key, value
// pairs in kv.
//
// A missing translation yields msgid itself, or msgid wrapped in "⟦⟧"
// when StrictMissingKeys is set.
func Tr(ctx context.Context, msgid string, kv ...any) string {
	return translate(ctx, message{singular: msgid}, kv)
}

// TrC is Tr with a disambiguating context, like gettext's pgettext.
func TrC(ctx context.Context, contextKey, msgid string, kv ...any) string {
	return translate(ctx, message{context: contextKey, singular: msgid}, kv)
}

// TrN picks the plural form for n, like gettext's ngettext. Without a
// translation the singular is used for n == 1 and the plural otherwise.
func TrN(ctx context.Context, singular, plural string, n int, kv ...any) string {
	return translate(ctx, message{singular: singular, plural: plural, n: n, counted: true}, kv)
}

// message is a single catalogue lookup.
type message struct {
	context  string
	singular string
	plural   string
	n        int
	counted  bool
}

// fallback is the English text shown when no catalogue has the message.
func (m message) fallback() string {
	if m.counted && m.n != 1 {
		return m.plural
	}

	return m.singular
}

// key is the gettext catalogue key: "context<EOT>msgid", or just msgid.
func (m message) key() string {
	if m.context == "" {
		return m.singular
	}

	return m.context + gotext.EotSeparator + m.singular
}

func (m message) lookup(cat *catalogue) (string, bool) {
	switch {
	case cat == nil:
		return "", false
	case m.counted:
		return cat.plural(m.singular, m.plural, m.n)
	default:
		return cat.singular(m.context, m.singular)
	}
}

func translate(ctx context.Context, m message, kv []any) string {
	cat, tag := resolveLocale(TagFrom(ctx))

	text, ok := m.lookup(cat)
	if !ok {
		text = m.fallback()

		// The base locale is the msgids themselves.
		if tag != baseTag && strictMissingKeys() {
			reportMissing(tag, m.key())

			text = markMissing(text)
		}
	}

	return fill(tag, text, kv)
}

// fill executes text as a template over the pairs in kv. Text without
// placeholders is returned as it is.
func fill(tag language.Tag, text string, kv []any) string {
	if !strings.Contains(text, "{{") {
		return text
	}

	tmpl, err := parseTemplate(text)
	if err == nil {
		var buf bytes.Buffer

		if err = tmpl.Execute(&buf, pairs(kv)); err == nil {
			return buf.String()
		}
	}

	if strictMissingKeys() {
		return markMissing(text)
	}

	Logger.Warn().Err(err).Str("locale", tag.String()).Str("text", text).Msg("Failed to fill translation placeholders")

	return text
}

func parseTemplate(text string) (*template.Template, error) {
	if cached, ok := templates.Load(text); ok {
		return cached.(*template.Template), nil
	}

	tmpl, err := template.New("msg").Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, err
	}

	templates.Store(text, tmpl)

	return tmpl, nil
}

// resolveLocale returns the catalogue closest to t and its tag. Before
// Setup, and for the base locale, the catalogue is nil.
func resolveLocale(t language.Tag) (*catalogue, language.Tag) {
	if matcher == nil {
		return nil, baseTag
	}

	// The matched tag may carry a region extension; the index does not.
	_, i, _ := matcher.Match(t)
	matched := supportedTags[i]

	return catalogues[matched.String()], matched
}

// pairs turns alternating key, value arguments into template data.
// Odd argument counts and non-string keys are programming errors.
func pairs(kv []any) map[string]any {
	if len(kv)%2 != 0 {
		panic("i18n: odd number of placeholder arguments")
	}

	data := make(map[string]any, len(kv)/2)

	for i := 0; i < len(kv); i += 2 {
		name, ok := kv[i].(string)
		if !ok {
			panic("i18n: placeholder name must be a string")
		}

		data[name] = kv[i+1]
	}

	return data
}
