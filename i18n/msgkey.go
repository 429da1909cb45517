// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import "context"

// MsgKey is a msgid declared ahead of time, such as a check name, and
// translated when it is displayed.
//
// cmd/i18n_extract picks up every constant converted to MsgKey.
type MsgKey string

// Tr translates the msgid for the locale in ctx, as [Tr] does.
// A nil ctx selects the base locale.
func (s MsgKey) Tr(ctx context.Context) string {
	return Tr(ctx, string(s))
}
