// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"gopkg.in/yaml.v2"

	"github.com/tfctl/inidrift/internal/differ"
	"github.com/tfctl/inidrift/internal/ini"
)

// Formats accepted by Spit.
var Formats = []string{"text", "json", "yaml"}

// Options controls how a report is emitted.
type Options struct {
	Format string
	Color  bool
}

// Spit writes the report to w in the requested format. An empty format means
// text. If w is nil, os.Stdout is used.
func Spit(w io.Writer, rpt Report, opts Options) error {
	if w == nil {
		w = os.Stdout
	}

	log.Debugf("emitting report: format=%s entries=%d", opts.Format, len(rpt.Entries))

	switch opts.Format {
	case "", "text":
		TextWriter(w, rpt, opts.Color)
		return nil
	case "json":
		return JSONWriter(w, rpt)
	case "yaml":
		return YAMLWriter(w, rpt)
	default:
		return fmt.Errorf("unknown output format: %s", opts.Format)
	}
}

// TextWriter writes the annotated line listing followed by the summary. Each
// line carries a marker column: "+" for missing, "*" for emptied.
func TextWriter(w io.Writer, rpt Report, color bool) {
	p := plainPalette()
	if color {
		p = getPalette("colors")
	}

	for _, e := range rpt.Entries {
		switch e.Status {
		case StatusMissing:
			fmt.Fprintf(w, "%s  | %s\n", p.missing("+"), e.Text)
		case StatusEmptied:
			fmt.Fprintf(w, "%s  | %s\n", p.emptied("*"), e.Text)
		default:
			fmt.Fprintf(w, "   | %s\n", e.Text)
		}
	}

	if rpt.Mode == ModeMerge {
		fmt.Fprintln(w, "\nMerge Complete.")
	} else {
		fmt.Fprintln(w, "\nCheck Complete.")
	}

	if !rpt.Drift() {
		fmt.Fprintln(w, p.missing("No issues found."))
		return
	}

	if rpt.Mode == ModeMerge {
		fmt.Fprintf(w, " - Added keys : %s\n", p.missing(fmt.Sprint(rpt.Missing)))
	} else {
		fmt.Fprintf(w, " - Missing keys : %s\n", p.missing(fmt.Sprint(rpt.Missing)))
	}
	fmt.Fprintf(w, " - Empty vals   : %s\n", p.emptied(fmt.Sprint(rpt.Emptied)))
}

type serialEntry struct {
	Line    int     `json:"line" yaml:"line"`
	Status  string  `json:"status" yaml:"status"`
	Kind    string  `json:"kind" yaml:"kind"`
	Section string  `json:"section" yaml:"section"`
	Key     *string `json:"key,omitempty" yaml:"key,omitempty"`
	Base    string  `json:"base" yaml:"base"`
	Target  *string `json:"target,omitempty" yaml:"target,omitempty"`
	Text    string  `json:"text" yaml:"text"`
}

type serialSummary struct {
	Missing int  `json:"missing" yaml:"missing"`
	Emptied int  `json:"emptied" yaml:"emptied"`
	Drift   bool `json:"drift" yaml:"drift"`
}

type serialReport struct {
	Mode    string        `json:"mode" yaml:"mode"`
	Base    string        `json:"base" yaml:"base"`
	Target  string        `json:"target" yaml:"target"`
	Results []serialEntry `json:"results" yaml:"results"`
	Summary serialSummary `json:"summary" yaml:"summary"`
}

func serialize(rpt Report) serialReport {
	out := serialReport{
		Mode:    string(rpt.Mode),
		Base:    rpt.Base,
		Target:  rpt.Target,
		Results: make([]serialEntry, 0, len(rpt.Entries)),
		Summary: serialSummary{
			Missing: rpt.Missing,
			Emptied: rpt.Emptied,
			Drift:   rpt.Drift(),
		},
	}
	for _, e := range rpt.Entries {
		out.Results = append(out.Results, serializeEntry(e))
	}
	return out
}

func serializeEntry(e Entry) serialEntry {
	se := serialEntry{
		Line:    e.Line,
		Status:  e.Status.String(),
		Kind:    e.Base.Kind.String(),
		Section: e.Section,
		Base:    e.Base.Raw,
		Text:    e.Text,
	}
	if e.Base.Kind == ini.KindKeyValue {
		key := e.Base.Key
		se.Key = &key
	}
	if e.Target != nil {
		raw := e.Target.Raw
		se.Target = &raw
	}
	return se
}

// JSONWriter writes the report as indented JSON.
func JSONWriter(w io.Writer, rpt Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(serialize(rpt)); err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	return nil
}

// YAMLWriter writes the report as YAML.
func YAMLWriter(w io.Writer, rpt Report) error {
	b, err := yaml.Marshal(serialize(rpt))
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	_, err = w.Write(b)
	return err
}

// PreviewWriter writes a merge preview as a unified-style listing.
func PreviewWriter(w io.Writer, target string, changes []differ.Change, color bool) {
	p := plainPalette()
	if color {
		p = getPalette("colors")
	}

	fmt.Fprintln(w, p.header(fmt.Sprintf("--- %s", target)))
	fmt.Fprintln(w, p.header(fmt.Sprintf("+++ %s (merged)", target)))
	for _, c := range changes {
		switch c.Op {
		case differ.OpInsert:
			fmt.Fprintln(w, p.missing("+"+c.Text))
		case differ.OpDelete:
			fmt.Fprintln(w, p.removed("-"+c.Text))
		default:
			fmt.Fprintln(w, " "+c.Text)
		}
	}
	if !differ.Changed(changes) {
		fmt.Fprintln(w, "No changes.")
	}
}

// paint renders a string, possibly wrapping it in escape sequences.
type paint func(string) string

// palette holds the paints used for markers and counts.
type palette struct {
	header  paint
	missing paint
	emptied paint
	removed paint
}

func plainPalette() palette {
	plain := func(s string) string { return s }
	return palette{header: plain, missing: plain, emptied: plain, removed: plain}
}
