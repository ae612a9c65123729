// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import "github.com/tfctl/inidrift/internal/ini"

// Placeholder is what stands in for a base line the target lacks. Key/value
// lines become "key=" (or "key:") so the base's own value never leaks into the
// target; anything else is copied verbatim.
func Placeholder(l ini.Line) string {
	if l.Kind == ini.KindKeyValue {
		return l.Key + l.Separator.String()
	}
	return l.Raw
}
