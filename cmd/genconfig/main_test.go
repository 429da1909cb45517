// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/transqa/transqa/config"
)

func defaults() *config.Config {
	cfg := &config.Config{}
	cfg.SetDefaults()

	return cfg
}

func TestRenderEnv(t *testing.T) {
	t.Parallel()

	out := renderEnv(defaults())

	assert.Contains(t, out, "## Check\n")
	assert.Contains(t, out, "# TRANSQA_SOURCE_LANGUAGES=en\n")
	assert.Contains(t, out, "# TRANSQA_WORKERS=4\n")
	assert.Contains(t, out, "# TRANSQA_LOG_OUTPUTS=/dev/stderr\n")
	assert.Contains(t, out, "# TRANSQA_STRICT_MISSING_KEYS=false\n")
	assert.NotContains(t, out, "Build")
}

func TestRenderYAML(t *testing.T) {
	t.Parallel()

	out, err := renderYAML(defaults())
	require.NoError(t, err)

	assert.Contains(t, out, "\ncheck:\n")
	assert.Contains(t, out, "\noutput:\n")
	assert.Contains(t, out, "  # workers: 4\n")
	assert.Contains(t, out, "  # format: text\n")
}
