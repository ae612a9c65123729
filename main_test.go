// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/inidrift/internal/config"
)

func TestRewriteLegacy(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "subcommand untouched",
			args:     []string{"inidrift", "merge", "a.ini", "b.ini"},
			expected: []string{"inidrift", "merge", "a.ini", "b.ini"},
		},
		{
			name:     "flag untouched",
			args:     []string{"inidrift", "--help"},
			expected: []string{"inidrift", "--help"},
		},
		{
			name:     "default check",
			args:     []string{"inidrift", "a.ini", "b.ini"},
			expected: []string{"inidrift", "check", "a.ini", "b.ini"},
		},
		{
			name:     "trailing merge",
			args:     []string{"inidrift", "a.ini", "b.ini", "--merge"},
			expected: []string{"inidrift", "merge", "a.ini", "b.ini"},
		},
		{
			name:     "leading merge",
			args:     []string{"inidrift", "--merge", "a.ini", "b.ini"},
			expected: []string{"inidrift", "merge", "a.ini", "b.ini"},
		},
		{
			name:     "last wins",
			args:     []string{"inidrift", "a.ini", "--merge", "b.ini", "--check"},
			expected: []string{"inidrift", "check", "a.ini", "b.ini"},
		},
		{
			name:     "other flags kept",
			args:     []string{"inidrift", "a.ini", "b.ini", "--merge", "-o", "json"},
			expected: []string{"inidrift", "merge", "a.ini", "b.ini", "-o", "json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, rewriteLegacy(tt.args))
		})
	}
}

func TestHandleNakedCommand(t *testing.T) {
	assert.Equal(t, []string{"inidrift", "--help"}, handleNakedCommand([]string{"inidrift"}))
	assert.Equal(t, []string{"inidrift", "check"}, handleNakedCommand([]string{"inidrift", "check"}))
}

func TestProcessSetOnly(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "inidrift.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte(`
check:
  defaults:
    - --color=false
  ci:
    - --fail-on-drift
    - -o json
`), 0o600))
	t.Setenv("INIDRIFT_CFG_FILE", cfgFile)
	_, err := config.Load()
	require.NoError(t, err)

	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "no set",
			args:     []string{"inidrift", "check", "a.ini", "b.ini"},
			expected: []string{"inidrift", "check", "a.ini", "b.ini"},
		},
		{
			name:     "named set expanded in place",
			args:     []string{"inidrift", "check", "@ci", "a.ini", "b.ini"},
			expected: []string{"inidrift", "check", "--fail-on-drift", "-o", "json", "a.ini", "b.ini"},
		},
		{
			name:     "bare at means defaults",
			args:     []string{"inidrift", "check", "a.ini", "b.ini", "@"},
			expected: []string{"inidrift", "check", "a.ini", "b.ini", "--color=false"},
		},
		{
			name:     "unknown set removed",
			args:     []string{"inidrift", "check", "@nope", "a.ini", "b.ini"},
			expected: []string{"inidrift", "check", "a.ini", "b.ini"},
		},
		{
			name:     "command only",
			args:     []string{"inidrift", "check"},
			expected: []string{"inidrift", "check"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, processSetOnly(tt.args))
		})
	}
}

func TestProcessCommandArgs_Completion(t *testing.T) {
	args := []string{"inidrift", "completion", "@bash"}
	assert.Equal(t, args, processCommandArgs(args))
}

func TestInitAndRunApp_ExitCodes(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("INIDRIFT_CACHE", "0")
	t.Setenv("INIDRIFT_CFG_FILE", "")

	base := filepath.Join(dir, "base.ini")
	clean := filepath.Join(dir, "clean.ini")
	drifted := filepath.Join(dir, "drifted.ini")
	require.NoError(t, os.WriteFile(base, []byte("[a]\nk=v\n"), 0o600))
	require.NoError(t, os.WriteFile(clean, []byte("[a]\nk=v\n"), 0o600))
	require.NoError(t, os.WriteFile(drifted, []byte("[a]\n"), 0o600))

	tests := []struct {
		name string
		args []string
		code int
	}{
		{"clean", []string{"inidrift", "check", "-o", "json", base, clean}, 0},
		{"drift without flag", []string{"inidrift", "check", "-o", "json", base, drifted}, 0},
		{"drift with flag", []string{"inidrift", "check", "-o", "json", "--fail-on-drift", base, drifted}, 3},
		{"missing base", []string{"inidrift", "check", "-o", "json", filepath.Join(dir, "nope.ini"), clean}, 2},
		{"wrong arg count", []string{"inidrift", "check", base}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, initAndRunApp(tt.args))
		})
	}
}
