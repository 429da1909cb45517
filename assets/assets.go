// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package assets provides access to the files embedded into the binary, such
as the gettext catalogues under po/.
*/
package assets

import (
	"io/fs"
)

// FS provides access to the embedded file system.
// It is assigned by package main at start-up; tests may swap in their own.
var FS fs.FS
