// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/transqa/transqa/core/checks"
	"codeberg.org/transqa/transqa/core/unit"
)

func TestWritePOT(t *testing.T) {
	t.Parallel()

	refs := map[key][]ref{
		{id: "Not translated"}: {
			{file: "core/checks/same/same.go", line: 30},
			{file: "core/checks/same/same.go", line: 30},
			{file: "core/checks/same/same.go", line: 12},
		},
		{ctx: "report", id: "Source"}: {{file: "core/report/text.go", line: 44}},
		{id: "{{.Count}} unit failed", plural: "{{.Count}} units failed"}: {
			{file: "core/report/text.go", line: 70},
		},
	}

	var b strings.Builder
	writePOT(&b, refs, "v1.2.3")

	out := b.String()
	assert.Contains(t, out, "\"Project-Id-Version: transqa v1.2.3\\n\"\n")
	assert.Contains(t, out, "#: core/checks/same/same.go:12 core/checks/same/same.go:30\nmsgid \"Not translated\"\nmsgstr \"\"\n")
	assert.Contains(t, out, "#, go-template\nmsgid \"{{.Count}} unit failed\"\nmsgid_plural \"{{.Count}} units failed\"\n")
	assert.Contains(t, out, "msgctxt \"report\"\nmsgid \"Source\"\n")
	assert.Less(t, strings.Index(out, "Not translated"), strings.Index(out, "msgctxt \"report\""))

	units, err := unit.Parse([]byte(out), "transqa.pot", unit.Options{})
	require.NoError(t, err)
	require.Len(t, units, 3)

	for _, u := range units {
		if u.Sources()[0] == "{{.Count}} unit failed" {
			assert.Equal(t, checks.Flags{"go-template"}, u.Flags())
		}
	}
}
