// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import "github.com/leonelquinteros/gotext"

// catalogue is one loaded .po file.
//
// Singular messages are read from the translation snapshots, because
// gotext resolves singular lookups through the plural formula with n = 0,
// which selects a form other than the first in languages such as Czech
// and German.
type catalogue struct {
	domain   *gotext.Domain
	plain    map[string]*gotext.Translation
	contexts map[string]map[string]*gotext.Translation
}

func newCatalogue(domain *gotext.Domain) *catalogue {
	return &catalogue{
		domain:   domain,
		plain:    domain.GetTranslations(),
		contexts: domain.GetCtxTranslations(),
	}
}

// singular returns the first form of msgid, optionally under a context.
func (c *catalogue) singular(context, msgid string) (string, bool) {
	tr := c.plain[msgid]
	if context != "" {
		tr = c.contexts[context][msgid]
	}

	if tr == nil || !tr.IsTranslated() {
		return "", false
	}

	return tr.Get(), true
}

// plural returns the form of msgid the catalogue's Plural-Forms pick for n.
func (c *catalogue) plural(msgid, plural string, n int) (string, bool) {
	if !c.domain.IsTranslatedN(msgid, n) {
		return "", false
	}

	return c.domain.GetN(msgid, plural, n), true
}
