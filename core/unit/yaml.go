// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

package unit

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"

	"codeberg.org/transqa/transqa/core/checks"
)

type yamlDocument struct {
	Language string   `yaml:"language"`
	Flags    FlagList `yaml:"flags"`
	Units    []Record `yaml:"units"`
}

func parseYAML(data []byte, name string, opts Options) ([]*Unit, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	file, err := parser.ParseBytes(data, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	if len(file.Docs) == 0 || file.Docs[0].Body == nil {
		return nil, nil
	}

	// A bare sequence is a list of units without document defaults.
	if _, ok := file.Docs[0].Body.(*ast.SequenceNode); ok {
		var records []Record
		if err := yaml.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}

		return buildAll(records, defaults{file: name}, opts)
	}

	var doc yamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return buildAll(doc.Units, defaults{
		language: doc.Language,
		flags:    checks.Flags(doc.Flags),
		file:     name,
	}, opts)
}
