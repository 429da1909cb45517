// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	maxEnvironmentKeyValueParts = 2
	minQuotedValueLength        = 2
)

// useDotEnv loads environment variables from a .env file, checking
// the current working directory, then the directory of the binary.
//
// A missing file is not an error. Variables already present in the
// environment are left alone.
func useDotEnv() error {
	dirs := make([]string, 0, 2)

	if cwd, err := os.Getwd(); err == nil {
		dirs = append(dirs, cwd)
	} else {
		log.Warn().
			Err(err).
			Msg("Could not get current working directory")
	}

	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	}

	for _, dir := range dirs {
		envPath := filepath.Join(dir, ".env")

		// #nosec G304 - envPath is built from the working or binary directory
		data, err := os.ReadFile(envPath)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}

		if err != nil {
			log.Warn().
				Err(err).
				Str("path", envPath).
				Msg("Could not read .env file")

			continue
		}

		applyDotEnv(envPath, data)

		return nil
	}

	log.Debug().Msg("No .env file found, skipping")

	return nil
}

// applyDotEnv sets every KEY=value pair from data that is not already
// defined in the environment.
func applyDotEnv(envPath string, data []byte) {
	for key, value := range parseDotEnv(envPath, data) {
		if _, set := os.LookupEnv(key); set {
			continue
		}

		if err := os.Setenv(key, value); err != nil {
			log.Warn().
				Err(err).
				Str("key", key).
				Msg("Could not set environment variable")
		}
	}

	log.Info().
		Str("path", envPath).
		Msg("Loaded configuration from .env file")
}

// parseDotEnv reads KEY=value lines. Blank lines and # comments are skipped,
// and one level of matching quotes around a value is removed.
func parseDotEnv(envPath string, data []byte) map[string]string {
	vars := make(map[string]string)

	for lineNumber, rawLine := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", maxEnvironmentKeyValueParts)
		if len(parts) != maxEnvironmentKeyValueParts || strings.TrimSpace(parts[0]) == "" {
			log.Warn().
				Str("path", envPath).
				Int("line", lineNumber+1).
				Str("content", line).
				Msg("Invalid format in .env file")

			continue
		}

		key, value := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
		if len(value) >= minQuotedValueLength && value[0] == value[len(value)-1] && (value[0] == '"' || value[0] == '\'') {
			value = value[1 : len(value)-1]
		}

		vars[key] = value
	}

	return vars
}
