// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Op is a line operation in a preview.
type Op int

const (
	OpEqual Op = iota
	OpInsert
	OpDelete
)

// Change is one line of a preview. Text has no trailing newline.
type Change struct {
	Op   Op
	Text string
}

// Preview computes a line-level diff from before to after, which is what a
// merge would do to the target file.
func Preview(before, after string) []Change {
	dmp := diffmatchpatch.New()
	rBefore, rAfter, lineArray := dmp.DiffLinesToRunes(before, after)
	diffs := dmp.DiffMainRunes(rBefore, rAfter, false)
	diffs = dmp.DiffCleanupMerge(diffs)

	var changes []Change
	for _, d := range diffs {
		var op Op
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			op = OpInsert
		case diffmatchpatch.DiffDelete:
			op = OpDelete
		default:
			op = OpEqual
		}
		for _, r := range d.Text {
			i := int(r)
			if i < 0 || i >= len(lineArray) {
				continue
			}
			changes = append(changes, Change{Op: op, Text: strings.TrimSuffix(lineArray[i], "\n")})
		}
	}
	return changes
}

// Changed reports whether a preview contains anything but equal lines.
func Changed(changes []Change) bool {
	for _, c := range changes {
		if c.Op != OpEqual {
			return true
		}
	}
	return false
}
