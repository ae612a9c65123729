// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletion(t *testing.T) {
	sandbox(t, "")

	tests := []struct {
		name    string
		args    []string
		shell   string
		want    string
		wantErr string
	}{
		{name: "bash", args: []string{"completion", "bash"}, want: "complete -o filenames -F _inidrift inidrift"},
		{name: "zsh", args: []string{"completion", "zsh"}, want: "#compdef inidrift"},
		{name: "detect zsh", args: []string{"completion"}, shell: "/bin/zsh", want: "compdef _inidrift inidrift"},
		{name: "detect bash", args: []string{"completion"}, shell: "/usr/bin/bash", want: "_get_comp_words_by_ref"},
		{name: "unknown", args: []string{"completion", "fish"}, wantErr: "usage: inidrift completion [bash|zsh]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SHELL", tt.shell)

			out, errOut, err := run(t, tt.args...)

			require.NoError(t, err)
			if tt.wantErr != "" {
				assert.Empty(t, out)
				assert.Contains(t, errOut, tt.wantErr)
				return
			}
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestCompletionScriptsListCommands(t *testing.T) {
	for _, c := range []string{"check", "merge", "watch", "restore"} {
		assert.Contains(t, bashCompletionScript, c)
		assert.Contains(t, zshCompletionScript, c)
	}
}
