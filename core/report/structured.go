// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

package report

import (
	"encoding/json"
	"io"

	"github.com/goccy/go-yaml"
)

func writeJSON(w io.Writer, doc document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	return enc.Encode(doc)
}

// writeYAML marshals first: the goccy encoder drops errors from w.
func writeYAML(w io.Writer, doc document) error {
	out, err := yaml.MarshalWithOptions(doc, yaml.Indent(2))
	if err != nil {
		return err
	}

	_, err = w.Write(out)

	return err
}
