// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"codeberg.org/transqa/transqa/i18n"
)

const (
	markFailed = "✗"
	markPassed = "✓"
)

// textWriter keeps the first write error so the rendering code can stay
// linear.
type textWriter struct {
	w   io.Writer
	err error
}

func (tw *textWriter) printf(format string, args ...any) {
	if tw.err != nil {
		return
	}

	_, tw.err = fmt.Fprintf(tw.w, format, args...)
}

func writeText(ctx context.Context, w io.Writer, doc document) error {
	tw := &textWriter{w: w}

	tw.printf("%s\n\n", i18n.Tr(ctx, "Validation pass {{.ID}}", "ID", doc.Pass))

	sourceLabel := i18n.TrC(ctx, "report", "Source")
	targetLabel := i18n.TrC(ctx, "report", "Target")

	for _, r := range doc.Results {
		if r.OK() {
			tw.printf("%s %s (%s)\n", markPassed, r.UnitID, r.Language)

			continue
		}

		names := make([]string, 0, len(r.Failed))
		for _, id := range r.Failed {
			names = append(names, doc.checkName(id))
		}

		tw.printf("%s %s (%s): %s\n", markFailed, r.UnitID, r.Language, strings.Join(names, ", "))
		tw.printf("    %s: %s\n", sourceLabel, r.Source)
		tw.printf("    %s: %s\n", targetLabel, r.Target)
	}

	if len(doc.Results) > 0 {
		tw.printf("\n")
	}

	for _, c := range doc.Checks {
		if c.Failures > 0 {
			tw.printf("%s: %s\n", c.Name, c.Description)
		}
	}

	tw.printf("%s\n", i18n.TrN(ctx, "{{.Count}} unit checked", "{{.Count}} units checked", doc.Units, "Count", doc.Units))
	tw.printf("%s\n", i18n.TrN(ctx, "{{.Count}} unit failed", "{{.Count}} units failed", doc.Failed, "Count", doc.Failed))

	return tw.err
}
