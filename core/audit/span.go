// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

package audit

import (
	"context"
	"fmt"
	"runtime/trace"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Span represents a unit of work in flight: a validation pass, an input
// file being loaded or a report being written.
type Span struct {
	// only these fields are set automatically
	task     *trace.Task
	start    time.Time
	duration time.Duration

	Kind   SpanKind
	ID     string
	Name   string
	Items  int
	Failed int
	Bytes  int
	Error  error
}

// SpanKind describes what a span measures.
type SpanKind string

// Constants for span kinds.
const (
	KindPass   SpanKind = "pass"
	KindLoad   SpanKind = "load"
	KindReport SpanKind = "report"
)

func (span *Span) Begin(ctx context.Context) context.Context {
	span.start = time.Now()

	ctx, span.task = trace.NewTask(ctx, "transqa."+string(span.Kind))

	return ctx
}

// End stops the clock. Calling it more than once has no effect.
func (span *Span) End() {
	// only end once
	if span.task != nil {
		span.duration = time.Since(span.start)
		span.task.End()
		span.task = nil
	}
}

// Started returns when Begin was called.
func (span *Span) Started() time.Time {
	return span.start
}

// Duration returns the time between Begin and End.
func (span *Span) Duration() time.Duration {
	return span.duration
}

// Log writes the span to the global logger. Passes are logged at info
// level, everything else at debug.
func (span Span) Log() {
	level := zerolog.DebugLevel
	if span.Kind == KindPass {
		level = zerolog.InfoLevel
	}

	if span.Error != nil {
		level = zerolog.ErrorLevel
	}

	event := log.WithLevel(level)

	event.Str("sys", string(span.Kind))
	event.Dur("dur", span.duration)

	if span.ID != "" {
		event.Str(string(span.Kind), span.ID)
	}

	if span.Name != "" {
		event.Str("name", span.Name)
	}

	event.Int("units", span.Items)

	if span.Kind == KindPass {
		event.Int("failed", span.Failed)
	}

	if span.Bytes > 0 {
		event.Str("len", humanizeSize(span.Bytes))
	}

	if span.Error != nil {
		event.Err(span.Error)
	}

	event.Msg("Finished " + string(span.Kind))
}

const (
	bytesInKB = 1024
	bytesInMB = bytesInKB * bytesInKB
	bytesInGB = bytesInMB * bytesInKB
)

func humanizeSize(x int) string {
	if x < bytesInKB {
		return strconv.Itoa(x)
	}

	if x < bytesInMB {
		return fmt.Sprintf("%.2fK", float64(x)/bytesInKB)
	}

	if x < bytesInGB {
		return fmt.Sprintf("%.2fM", float64(x)/bytesInMB)
	}

	return fmt.Sprintf("%.2fG", float64(x)/bytesInGB)
}
