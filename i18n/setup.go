// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"

	"codeberg.org/transqa/transqa/assets"
)

var (
	// catalogues maps canonical BCP 47 tags, for example
	// "cs" or "pt-BR", to their loaded catalogue.
	catalogues map[string]*catalogue

	// supportedTags holds the list of BCP 47 tags for which a locale was successfully loaded.
	supportedTags []language.Tag

	// matcher is a private [language.Matcher] derived from the loaded locales.
	matcher language.Matcher
)

// ErrNoAssets is returned by Setup when assets.FS has not been assigned.
var ErrNoAssets = errors.New("embedded assets are not available")

// Setup loads every catalogue under po/ in assets.FS and rebuilds the
// language matcher. Catalogues are named after their locale, as in
// po/cs.po or po/pt_BR.po; the template po/transqa.pot is not a catalogue.
// Files whose names are not language tags are skipped with a warning.
//
// The base locale is always available and is the fallback for matching.
// Calling Setup again replaces what an earlier call loaded.
func Setup() error {
	Logger = log.With().Str("sys", "i18n").Logger()

	catalogues = make(map[string]*catalogue)
	supportedTags = nil
	matcher = nil

	if assets.FS == nil {
		return ErrNoAssets
	}

	entries, err := fs.ReadDir(assets.FS, "po")
	if err != nil {
		return fmt.Errorf("failed to read po directory: %w", err)
	}

	var loaded []language.Tag

	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".po" {
			continue
		}

		t, cat, err := loadCatalogue(entry.Name())
		if err != nil {
			Logger.Warn().Err(err).Str("file", entry.Name()).Msg("Skipping catalogue")

			continue
		}

		catalogues[t.String()] = cat
		loaded = append(loaded, t)
	}

	supportedTags = supported(loaded)
	matcher = language.NewMatcher(supportedTags)

	Logger.Info().Int("locales", len(supportedTags)).Msg("Initialized i18n engine")

	return nil
}

// loadCatalogue parses po/<name> for the tag its name spells, with either
// hyphens or underscores.
func loadCatalogue(name string) (language.Tag, *catalogue, error) {
	t, err := language.Parse(strings.ReplaceAll(strings.TrimSuffix(name, ".po"), "_", "-"))
	if err != nil {
		return language.Tag{}, nil, err
	}

	po := gotext.NewPoFS(assets.FS)
	po.ParseFile(path.Join("po", name))

	Logger.Debug().Str("locale", t.String()).Msg("Loaded catalogue")

	return t, newCatalogue(po.GetDomain()), nil
}

// supported orders the matcher's tags: the base tag first, being the
// fallback, then the loaded ones by tag string.
func supported(loaded []language.Tag) []language.Tag {
	sort.Slice(loaded, func(i, j int) bool { return loaded[i].String() < loaded[j].String() })

	all := make([]language.Tag, 0, len(loaded)+1)
	all = append(all, baseTag)

	for _, t := range loaded {
		if t != baseTag {
			all = append(all, t)
		}
	}

	return all
}
