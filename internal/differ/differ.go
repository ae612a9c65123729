// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"github.com/tfctl/inidrift/internal/ini"
)

// Result pairs a base line with its counterpart in the target. Target is nil
// when nothing in the target matched.
type Result struct {
	Base   ini.Line
	Target *ini.Line
}

// Found reports whether a target counterpart exists.
func (r Result) Found() bool {
	return r.Target != nil
}

// sectionID is the grouping key of the target index. The zero value is the
// global pseudo-section holding everything before the first header.
type sectionID struct {
	named bool
	name  string
}

var global = sectionID{}

func named(name string) sectionID {
	return sectionID{named: true, name: name}
}

// index maps each section of the target to its lines in document order. A
// header is the first member of its own bucket.
type index map[sectionID][]ini.Line

func newIndex(lines []ini.Line) index {
	idx := make(index)
	current := global
	for _, l := range lines {
		if l.Kind == ini.KindSection {
			current = named(l.Name)
		}
		idx[current] = append(idx[current], l)
	}
	return idx
}

// section returns the header line of a named section.
func (idx index) section(id sectionID) *ini.Line {
	if !id.named {
		return nil
	}
	lines, ok := idx[id]
	if !ok || len(lines) == 0 {
		return nil
	}
	return clone(lines[0])
}

// key returns the first key/value line in the section with exactly this key.
func (idx index) key(id sectionID, key string) *ini.Line {
	lines := idx[id]
	for i := range lines {
		if lines[i].Kind == ini.KindKeyValue && lines[i].Key == key {
			return clone(lines[i])
		}
	}
	return nil
}

// other returns the first non key/value, non header line in the section with
// byte-identical raw text.
func (idx index) other(id sectionID, raw string) *ini.Line {
	lines := idx[id]
	for i := range lines {
		if lines[i].Kind == ini.KindOther && lines[i].Raw == raw {
			return clone(lines[i])
		}
	}
	return nil
}

// clone hands out a copy so results never alias the index.
func clone(l ini.Line) *ini.Line {
	return &l
}

// Diff produces one Result per base line, in base order. Each base line is
// looked up within the target section that corresponds to the base section
// it appears under.
func Diff(base, target string) []Result {
	idx := newIndex(ini.Classify(target))
	baseLines := ini.Classify(base)

	results := make([]Result, 0, len(baseLines))
	current := global
	for _, l := range baseLines {
		var match *ini.Line
		switch l.Kind {
		case ini.KindSection:
			current = named(l.Name)
			match = idx.section(current)
		case ini.KindKeyValue:
			match = idx.key(current, l.Key)
		case ini.KindOther:
			match = idx.other(current, l.Raw)
		}
		results = append(results, Result{Base: l, Target: match})
	}
	return results
}
