// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const logFilePermissions = 0o666

// setupAudit configures the global logger from the log section.
func (cfg *Config) setupAudit() {
	level := zerolog.DebugLevel

	if !cfg.Development.InDevelopment {
		if parsed, err := zerolog.ParseLevel(cfg.Log.Level); err == nil {
			level = parsed
		}
	}

	zerolog.SetGlobalLevel(level)

	writers := []io.Writer{}

	for _, output := range cfg.Log.Outputs {
		var f *os.File

		switch output {
		case "/dev/stdout":
			f = os.Stdout
		case "/dev/stderr":
			f = os.Stderr
		default:
			file, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermissions) // #nosec:G302,G304
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to open log file %s: %v\n", output, err)

				continue
			}

			f = file
		}

		if cfg.Log.Format == "json" {
			writers = append(writers, f)
		} else {
			writers = append(writers, ConsoleWriter(f))
		}
	}

	if len(writers) == 0 {
		writers = append(writers, ConsoleWriter(os.Stderr))
	}

	log.Logger = log.Output(zerolog.MultiLevelWriter(writers...))
}

// isTerminal returns true if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ConsoleWriter returns a writer for zerolog that has NoColor:!isTerminal(f).
func ConsoleWriter(f *os.File) io.Writer {
	noColor := !isTerminal(f)

	w := zerolog.ConsoleWriter{Out: f, NoColor: noColor, TimeFormat: time.DateTime}

	if !noColor {
		w.FormatPrepare = func(m map[string]any) error {
			// Fold the subsystem into the message on interactive terminals.
			if sys, ok := m["sys"].(string); ok {
				m["message"] = fmt.Sprintf("[%s] %v", sys, m["message"])
				delete(m, "sys")
			}

			return nil
		}
	}

	return w
}
