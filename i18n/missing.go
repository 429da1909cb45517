// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"codeberg.org/transqa/transqa/config"
)

var (
	// Logger is the logger used by package i18n.
	Logger zerolog.Logger

	// reported remembers which locale and key pairs were already logged
	// as missing, keyed by "locale\x00key".
	reported sync.Map
)

func strictMissingKeys() bool {
	return config.Global.Internationalization.StrictMissingKeys
}

func markMissing(text string) string {
	return "⟦" + text + "⟧"
}

// reportMissing warns about a missing catalogue key once per locale.
// Variants and extensions of tag are ignored.
func reportMissing(tag language.Tag, key string) {
	base, script, region := tag.Raw()
	stripped, _ := language.Compose(base, script, region)
	locale := stripped.String()

	if _, seen := reported.LoadOrStore(locale+"\x00"+key, struct{}{}); seen {
		return
	}

	Logger.Warn().
		Str("locale", locale).
		Str("key", key).
		Msg("Missing translation")
}
