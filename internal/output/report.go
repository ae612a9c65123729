// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"strings"

	"github.com/tfctl/inidrift/internal/differ"
	"github.com/tfctl/inidrift/internal/ini"
)

// Mode selects the wording of the summary.
type Mode string

const (
	ModeCheck Mode = "check"
	ModeMerge Mode = "merge"
)

// Status is the verdict for one base line.
type Status int

const (
	StatusPresent Status = iota
	StatusMissing
	StatusEmptied
)

func (s Status) String() string {
	switch s {
	case StatusMissing:
		return "missing"
	case StatusEmptied:
		return "emptied"
	default:
		return "present"
	}
}

// Entry is one line of a report. Text is the line as it should appear in the
// target. Section is the name of the enclosing base section, empty for the
// global section.
type Entry struct {
	Line    int
	Status  Status
	Section string
	Base    ini.Line
	Target  *ini.Line
	Text    string
}

// Report is the assessed outcome of a diff.
type Report struct {
	Mode    Mode
	Base    string
	Target  string
	Entries []Entry
	Missing int
	Emptied int
}

// Assess decides the status of a single diff result. A key counts as emptied
// only when the target value is blank and the base value is not.
func Assess(r differ.Result) Status {
	if r.Target == nil {
		return StatusMissing
	}
	if r.Base.Kind == ini.KindKeyValue && r.Target.Kind == ini.KindKeyValue &&
		isBlank(r.Target.Value) && !isBlank(r.Base.Value) {
		return StatusEmptied
	}
	return StatusPresent
}

// Build assesses every result and tallies the counts.
func Build(mode Mode, base, target string, results []differ.Result) Report {
	rpt := Report{
		Mode:    mode,
		Base:    base,
		Target:  target,
		Entries: make([]Entry, 0, len(results)),
	}

	section := ""
	for i, r := range results {
		if r.Base.Kind == ini.KindSection {
			section = r.Base.Name
		}
		e := Entry{
			Line:    i + 1,
			Status:  Assess(r),
			Section: section,
			Base:    r.Base,
			Target:  r.Target,
		}
		switch e.Status {
		case StatusMissing:
			e.Text = differ.Placeholder(r.Base)
			rpt.Missing++
		case StatusEmptied:
			e.Text = r.Target.Raw
			rpt.Emptied++
		default:
			e.Text = r.Target.Raw
		}
		rpt.Entries = append(rpt.Entries, e)
	}

	return rpt
}

// Drift reports whether anything is missing or emptied.
func (r Report) Drift() bool {
	return r.Missing > 0 || r.Emptied > 0
}

// Lines returns the rendered line stream, without terminators.
func (r Report) Lines() []string {
	lines := make([]string, len(r.Entries))
	for i, e := range r.Entries {
		lines[i] = e.Text
	}
	return lines
}

// Content is Lines joined with a newline after every line, as merge writes it.
func (r Report) Content() string {
	var b strings.Builder
	for _, l := range r.Lines() {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}

// Keep drops the missing entries whose positions are not in keep and
// recounts. Present and emptied entries are always kept.
func (r Report) Keep(keep map[int]bool) Report {
	out := r
	out.Entries = make([]Entry, 0, len(r.Entries))
	out.Missing = 0
	for i, e := range r.Entries {
		if e.Status == StatusMissing {
			if !keep[i] {
				continue
			}
			out.Missing++
		}
		out.Entries = append(out.Entries, e)
	}
	return out
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
