// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

package unit

import (
	"fmt"

	"github.com/tidwall/gjson"

	"codeberg.org/transqa/transqa/core/checks"
)

func parseJSON(data []byte, name string, opts Options) ([]*Unit, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrDecode)
	}

	root := gjson.ParseBytes(data)
	doc := defaults{file: name}

	list := root
	if root.IsObject() {
		doc.language = root.Get("language").String()
		doc.flags = jsonFlags(root.Get("flags"))
		list = root.Get("units")
	}

	if !list.Exists() {
		return nil, nil
	}

	if !list.IsArray() {
		return nil, fmt.Errorf("%w: units must be an array", ErrDecode)
	}

	var records []Record

	for _, item := range list.Array() {
		if !item.IsObject() {
			return nil, fmt.Errorf("%w: unit %d is not an object", ErrDecode, len(records)+1)
		}

		records = append(records, jsonRecord(item))
	}

	return buildAll(records, doc, opts)
}

func jsonRecord(item gjson.Result) Record {
	r := Record{
		ID:       item.Get("id").String(),
		Context:  item.Get("context").String(),
		Source:   item.Get("source").String(),
		Plural:   item.Get("plural").String(),
		Target:   item.Get("target").String(),
		Flags:    FlagList(jsonFlags(item.Get("flags"))),
		Language: item.Get("language").String(),
	}

	for _, t := range item.Get("targets").Array() {
		r.Targets = append(r.Targets, t.String())
	}

	return r
}

// jsonFlags accepts "a, b" as well as ["a", "b"].
func jsonFlags(v gjson.Result) checks.Flags {
	if v.IsArray() {
		var tokens []string
		for _, f := range v.Array() {
			tokens = append(tokens, f.String())
		}

		return checks.NewFlags(tokens...)
	}

	return checks.ParseFlags(v.String())
}
