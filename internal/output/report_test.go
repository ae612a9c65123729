// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/inidrift/internal/differ"
	"github.com/tfctl/inidrift/internal/ini"
)

func build(mode Mode, base, target string) Report {
	return Build(mode, "base.ini", "target.ini", differ.Diff(base, target))
}

func TestAssess(t *testing.T) {
	kv := func(s string) *ini.Line {
		l := ini.ClassifyLine(s)
		return &l
	}

	tests := []struct {
		name   string
		base   string
		target *ini.Line
		want   Status
	}{
		{name: "absent", base: "k=1", target: nil, want: StatusMissing},
		{name: "same", base: "k=1", target: kv("k=1"), want: StatusPresent},
		{name: "different value", base: "k=1", target: kv("k=2"), want: StatusPresent},
		{name: "emptied", base: "k=1", target: kv("k="), want: StatusEmptied},
		{name: "whitespace only value", base: "k=1", target: kv("k=  \t"), want: StatusEmptied},
		{name: "both blank", base: "k=", target: kv("k="), want: StatusPresent},
		{name: "blank base with filled target", base: "k= ", target: kv("k=x"), want: StatusPresent},
		{name: "section", base: "[s]", target: kv("[s]"), want: StatusPresent},
		{name: "other", base: "# c", target: kv("# c"), want: StatusPresent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := differ.Result{Base: ini.ClassifyLine(tt.base), Target: tt.target}
			assert.Equal(t, tt.want, Assess(r))
		})
	}
}

func TestBuild_MissingKey(t *testing.T) {
	rpt := build(ModeCheck, "[s]\nkey=1\n", "[s]\n")

	require.Len(t, rpt.Entries, 2)
	assert.Equal(t, StatusMissing, rpt.Entries[1].Status)
	assert.Equal(t, "key=", rpt.Entries[1].Text)
	assert.Equal(t, 1, rpt.Missing)
	assert.Equal(t, 0, rpt.Emptied)
	assert.True(t, rpt.Drift())
}

func TestBuild_EmptiedValue(t *testing.T) {
	rpt := build(ModeCheck, "[s]\nkey=1\n", "[s]\nkey=\n")

	require.Len(t, rpt.Entries, 2)
	assert.Equal(t, StatusEmptied, rpt.Entries[1].Status)
	assert.Equal(t, "key=", rpt.Entries[1].Text)
	assert.Equal(t, 0, rpt.Missing)
	assert.Equal(t, 1, rpt.Emptied)
}

func TestBuild_NoDrift(t *testing.T) {
	rpt := build(ModeCheck, "[a]\nx=1\n[b]\ny=2\n", "[b]\ny=3\n[a]\nx=4\n")

	assert.False(t, rpt.Drift())
	assert.Equal(t, []string{"[a]", "x=4", "[b]", "y=3"}, rpt.Lines())
}

func TestBuild_MissingKeepsSeparatorAndHidesValue(t *testing.T) {
	rpt := build(ModeMerge, "[s]\npassword: hunter2\n", "")

	assert.Equal(t, []string{"[s]", "password:"}, rpt.Lines())
	assert.Equal(t, 2, rpt.Missing)
}

func TestBuild_LineNumbers(t *testing.T) {
	rpt := build(ModeCheck, "a=1\nb=2\nc=3\n", "")
	for i, e := range rpt.Entries {
		assert.Equal(t, i+1, e.Line)
	}
}

func TestContent(t *testing.T) {
	rpt := build(ModeMerge, "[s]\nk=1\n", "")
	assert.Equal(t, "[s]\nk=\n", rpt.Content())

	empty := build(ModeMerge, "", "anything")
	assert.Equal(t, "", empty.Content())
}

func TestMerge_Idempotent(t *testing.T) {
	base := "top=1\n\n[a]\n# keep me\nx=1\ny:2\n[b]\nz=3\n"
	target := "[b]\nz=30\n\n[a]\nx=\nextra=9\n"

	first := build(ModeMerge, base, target)
	merged := first.Content()

	again := build(ModeCheck, base, merged)
	assert.Equal(t, 0, again.Missing, "nothing is missing after a merge")

	// Added keys carry no value and emptied keys stay empty, so they are the
	// only remaining drift.
	assert.Equal(t, first.Emptied+countAddedKeys(first), again.Emptied)

	// Merging the merged output changes nothing.
	second := build(ModeMerge, base, merged)
	assert.Equal(t, merged, second.Content())
}

func TestMerge_IdempotentWithoutValues(t *testing.T) {
	base := "[a]\nx=1\n# c\n[b]\ny=2\n"
	target := "[b]\ny=5\n"

	merged := build(ModeMerge, base, target).Content()
	again := build(ModeCheck, base, merged)

	assert.Equal(t, 0, again.Missing)
	// x was added without a value.
	assert.Equal(t, 1, again.Emptied)
}

func TestKeep(t *testing.T) {
	rpt := build(ModeMerge, "[s]\na=1\nb=\nc=3\n", "[s]\nb=\n")
	require.Equal(t, 2, rpt.Missing)

	kept := rpt.Keep(map[int]bool{3: true})

	assert.Equal(t, 1, kept.Missing)
	assert.Equal(t, []string{"[s]", "b=", "c="}, kept.Lines())
	assert.Equal(t, 2, rpt.Missing, "original report untouched")
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "present", StatusPresent.String())
	assert.Equal(t, "missing", StatusMissing.String())
	assert.Equal(t, "emptied", StatusEmptied.String())
}

func countAddedKeys(rpt Report) int {
	n := 0
	for _, e := range rpt.Entries {
		if e.Status == StatusMissing && e.Base.Kind == ini.KindKeyValue && !isBlank(e.Base.Value) {
			n++
		}
	}
	return n
}
