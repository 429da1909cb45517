// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Command genconfig writes example configuration files generated from the
// defaults in package config.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/rs/zerolog/log"

	"codeberg.org/transqa/transqa/config"
	"codeberg.org/transqa/transqa/core/audit"
)

const (
	envOutputFile  = "deploy/.env.example"
	yamlOutputFile = "deploy/config.yaml.example"
	filePerm       = 0o644
	dirPerm        = 0o755

	envFileHeader = `# transqa configuration (via environment variables)
#
# Copy this file to .env and customize the values below.
# List values are comma-separated.
#
# This file was auto-generated using go run ./cmd/genconfig.

`
	yamlFileHeader = `# transqa configuration (via configuration file)
#
# Copy this file to config.yaml and customize the values below.
#
# This file was auto-generated using go run ./cmd/genconfig.
`
)

func main() {
	audit.SetDefaultLogger()

	cfg := &config.Config{}
	cfg.SetDefaults()

	yamlExample, err := renderYAML(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to marshal config to YAML")
	}

	write(envOutputFile, renderEnv(cfg))
	write(yamlOutputFile, yamlExample)
}

func write(path, content string) {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("Failed to create output directory")
	}

	if err := os.WriteFile(path, []byte(content), filePerm); err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("Failed to write example file")
	}

	log.Info().Str("path", path).Msg("Generated example")
}

// renderEnv lists every environment variable of cfg, grouped by section,
// commented out and set to its default.
func renderEnv(cfg *config.Config) string {
	var sb strings.Builder

	sb.WriteString(envFileHeader)

	val := reflect.ValueOf(*cfg)
	typ := val.Type()

	for i := range typ.NumField() {
		section := typ.Field(i)
		sectionValue := val.Field(i)

		if sectionValue.Kind() != reflect.Struct || section.Tag.Get("yaml") == "-" {
			continue
		}

		fmt.Fprintf(&sb, "## %s\n", section.Name)

		for j := range section.Type.NumField() {
			field := section.Type.Field(j)

			tag, ok := field.Tag.Lookup("env")
			if !ok {
				continue
			}

			name := strings.Split(tag, ",")[0]
			fmt.Fprintf(&sb, "# %s=%s\n", name, envValue(sectionValue.Field(j)))
		}

		sb.WriteString("\n")
	}

	return sb.String()
}

// envValue formats v the way the environment reader parses it back.
func envValue(v reflect.Value) string {
	if v.Kind() == reflect.Slice {
		items := make([]string, 0, v.Len())
		for i := range v.Len() {
			items = append(items, fmt.Sprint(v.Index(i).Interface()))
		}

		return strings.Join(items, ",")
	}

	return fmt.Sprint(v.Interface())
}

// renderYAML marshals cfg and comments out every setting, keeping the
// section keys so the file stays valid YAML once a line is uncommented.
func renderYAML(cfg *config.Config) (string, error) {
	data, err := cfg.Marshal()
	if err != nil {
		return "", err
	}

	var sb strings.Builder

	sb.WriteString(yamlFileHeader)

	for line := range strings.SplitSeq(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		// Top-level keys (e.g., "check:") are treated as section headers.
		if !strings.HasPrefix(line, " ") {
			fmt.Fprintf(&sb, "\n%s\n", line)

			continue
		}

		indentSize := len(line) - len(strings.TrimLeft(line, " "))
		fmt.Fprintf(&sb, "%s# %s\n", strings.Repeat(" ", indentSize), trimmed)
	}

	return sb.String(), nil
}
