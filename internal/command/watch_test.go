// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchFiles_FiresOnChange(t *testing.T) {
	dir := t.TempDir()
	watched := writeFile(t, dir, "target.ini", "a=1\n")
	other := filepath.Join(dir, "unrelated.ini")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fired := make(chan struct{}, 16)
	done := make(chan error, 1)
	go func() {
		done <- watchFiles(ctx, []string{watched}, 20*time.Millisecond, func() {
			fired <- struct{}{}
		})
	}()

	// Changes to other files in the directory are ignored.
	deadline := time.After(300 * time.Millisecond)
	for quiet := false; !quiet; {
		require.NoError(t, os.WriteFile(other, []byte("x"), 0o600))
		select {
		case <-fired:
			t.Fatal("unrelated file triggered a check")
		case <-deadline:
			quiet = true
		case <-time.After(50 * time.Millisecond):
		}
	}

	// The watcher may not be registered yet, so keep touching the file.
	timeout := time.After(5 * time.Second)
	for got := false; !got; {
		require.NoError(t, os.WriteFile(watched, []byte("a=2\n"), 0o600))
		select {
		case <-fired:
			got = true
		case <-timeout:
			t.Fatal("no change detected")
		case <-time.After(100 * time.Millisecond):
		}
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatchFiles_Debounces(t *testing.T) {
	dir := t.TempDir()
	watched := writeFile(t, dir, "base.ini", "")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	go func() {
		_ = watchFiles(ctx, []string{watched}, 300*time.Millisecond, func() {
			calls.Add(1)
		})
	}()
	time.Sleep(100 * time.Millisecond)

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(watched, []byte{byte('a' + i)}, 0o600))
		time.Sleep(10 * time.Millisecond)
	}

	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 5*time.Second, 20*time.Millisecond)
	time.Sleep(400 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestWatchFiles_MissingDir(t *testing.T) {
	err := watchFiles(context.Background(), []string{filepath.Join(t.TempDir(), "no", "such.ini")}, time.Millisecond, func() {})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to watch")
}

func TestWatch_StopsOnCancel(t *testing.T) {
	dir := sandbox(t, "")
	base := writeFile(t, dir, "base.ini", "a=1\n")
	target := writeFile(t, dir, "target.ini", "")

	full := []string{"inidrift", "watch", "--color=false", "--debounce", "10ms", base, target}
	app, err := InitApp(context.Background(), full)
	require.NoError(t, err)
	out := &syncBuffer{}
	app.Writer = out
	app.ErrWriter = out

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx, full) }()

	assert.Eventually(t, func() bool {
		return out.Contains("Check Complete.")
	}, 5*time.Second, 20*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestWatch_RejectsRemoteBase(t *testing.T) {
	dir := sandbox(t, "")
	target := writeFile(t, dir, "target.ini", "")

	_, _, err := run(t, "watch", "s3://bucket/base.ini", target)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "local base")
}
