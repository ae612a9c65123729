// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// sandbox isolates config and cache in a temp dir and returns it.
func sandbox(t *testing.T, cfg string) string {
	t.Helper()
	dir := t.TempDir()

	cfgFile := filepath.Join(dir, "inidrift.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte(cfg), 0o600))
	t.Setenv("INIDRIFT_CFG_FILE", cfgFile)
	t.Setenv("INIDRIFT_CACHE_DIR", filepath.Join(dir, "cache"))
	for _, k := range []string{"INIDRIFT_CACHE", "INIDRIFT_OUTPUT", "INIDRIFT_FAIL_ON_DRIFT", "INIDRIFT_NO_BACKUP"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	return dir
}

// writeFile creates name under dir and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

// run builds the app and runs args, capturing stdout and stderr.
func run(t *testing.T, args ...string) (stdout string, stderr string, err error) {
	t.Helper()
	full := append([]string{"inidrift"}, args...)

	app, err := InitApp(context.Background(), full)
	require.NoError(t, err)

	var out, errOut bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &errOut

	err = app.Run(context.Background(), full)
	return out.String(), errOut.String(), err
}

// syncBuffer is a bytes.Buffer safe for a writer goroutine and a polling test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) Contains(s string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return strings.Contains(b.buf.String(), s)
}
