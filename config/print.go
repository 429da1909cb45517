// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func (cfg *Config) print() {
	log.Info().
		Str("version", BuildVersion).
		Str("revision", cfg.Build.Revision()).
		Msg("Starting transqa")

	if zerolog.GlobalLevel() > zerolog.DebugLevel {
		return
	}

	configYAML, err := cfg.Marshal()
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal config to YAML for printing")

		return
	}

	log.Debug().
		Str("config", string(configYAML)).
		Msg("Application configuration")
}
