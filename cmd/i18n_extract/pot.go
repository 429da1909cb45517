// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

// key models a gettext entry identified by context, singular msgid,
// and optional plural msgid_plural. For non-plural entries, plural is empty.
type key struct {
	ctx    string
	id     string
	plural string
}

type ref struct {
	file string
	line int
}

// writePOT renders refs as a gettext template, entries sorted by context,
// msgid and plural.
func writePOT(b *strings.Builder, refs map[key][]ref, version string) {
	keys := make([]key, 0, len(refs))
	for k := range refs {
		keys = append(keys, k)
	}

	slices.SortFunc(keys, func(x, y key) int {
		return strings.Compare(x.ctx+"\x00"+x.id+"\x00"+x.plural, y.ctx+"\x00"+y.id+"\x00"+y.plural)
	})

	writeHeader(b, version)

	for i, k := range keys {
		if i > 0 {
			b.WriteString("\n")
		}

		writeRefs(b, refs[k])

		// Messages rendered through text/template.
		if strings.Contains(k.id, "{{") {
			b.WriteString("#, go-template\n")
		}

		if k.ctx != "" {
			fmt.Fprintf(b, "msgctxt %q\n", k.ctx)
		}

		fmt.Fprintf(b, "msgid %q\n", k.id)

		if k.plural != "" {
			fmt.Fprintf(b, "msgid_plural %q\n", k.plural)
			b.WriteString("msgstr[0] \"\"\n")
			b.WriteString("msgstr[1] \"\"\n")
		} else {
			b.WriteString("msgstr \"\"\n")
		}
	}
}

// writeRefs emits a "#:" line with each file:line once, in order.
func writeRefs(b *strings.Builder, rs []ref) {
	slices.SortFunc(rs, func(x, y ref) int {
		if c := strings.Compare(x.file, y.file); c != 0 {
			return c
		}

		return x.line - y.line
	})

	rs = slices.Compact(rs)

	b.WriteString("#:")

	for _, r := range rs {
		fmt.Fprintf(b, " %s:%d", r.file, r.line)
	}

	b.WriteString("\n")
}

// writeHeader emits a POT header.
func writeHeader(b *strings.Builder, version string) {
	fmt.Fprintln(b, `msgid ""`)
	fmt.Fprintln(b, `msgstr ""`)
	fmt.Fprintf(b, "\"Project-Id-Version: transqa %s\\n\"\n", version)
	fmt.Fprintf(b, "\"POT-Creation-Date: %s\\n\"\n", time.Now().UTC().Format("2006-01-02 15:04+0000"))
	fmt.Fprintln(b, `"Language: en\n"`)
	fmt.Fprintln(b, `"MIME-Version: 1.0\n"`)
	fmt.Fprintln(b, `"Content-Type: text/plain; charset=UTF-8\n"`)
	fmt.Fprintln(b, `"Content-Transfer-Encoding: 8bit\n"`)
	fmt.Fprintln(b, `"Plural-Forms: nplurals=2; plural=(n != 1);\n"`)
	fmt.Fprintln(b)
}

// detectVersion resolves a human-friendly version string using git describe.
// Falls back to "dev" when git is unavailable or this is not a git checkout.
func detectVersion() string {
	out, err := exec.Command("git", "describe", "--tags", "--always", "--dirty").Output()
	if err != nil {
		return "dev"
	}

	return strings.TrimSpace(string(out))
}

// findProjectRoot returns the git toplevel directory, else the nearest
// parent holding go.mod, else wd. Source references are relative to it.
func findProjectRoot(wd string) string {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	cmd.Dir = wd

	if out, err := cmd.Output(); err == nil {
		if root := strings.TrimSpace(string(out)); root != "" {
			return filepath.Clean(root)
		}
	}

	for dir := filepath.Clean(wd); ; dir = filepath.Dir(dir) {
		if fi, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil && !fi.IsDir() {
			return dir
		}

		if filepath.Dir(dir) == dir {
			return wd
		}
	}
}
