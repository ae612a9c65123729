// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/tidwall/gjson"

	"github.com/tfctl/inidrift/internal/filters"
)

// FilterKeys are the entry fields a --filter expression may name.
var FilterKeys = []string{"line", "status", "kind", "section", "key", "base", "target", "text"}

// Filter keeps the entries matching spec. Counts still describe the whole
// report; only the listing is narrowed.
func (r Report) Filter(spec string) (Report, error) {
	fs := filters.BuildFilters(spec)
	if len(fs) == 0 {
		return r, nil
	}
	for _, f := range fs {
		if !slices.Contains(FilterKeys, f.Key) {
			return r, fmt.Errorf("unknown filter key %q: must be one of %v", f.Key, FilterKeys)
		}
	}

	out := r
	out.Entries = make([]Entry, 0, len(r.Entries))
	for _, e := range r.Entries {
		b, err := json.Marshal(serializeEntry(e))
		if err != nil {
			return r, fmt.Errorf("failed to marshal entry: %w", err)
		}
		if filters.Match(gjson.ParseBytes(b), fs) {
			out.Entries = append(out.Entries, e)
		}
	}
	return out, nil
}
