// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/inidrift/internal/config"
	"github.com/tfctl/inidrift/internal/log"
	"github.com/tfctl/inidrift/internal/meta"
	"github.com/tfctl/inidrift/internal/source"
	"github.com/tfctl/inidrift/internal/util"
)

// watchCommandAction is the action handler for the "watch" subcommand. It
// runs a check, then runs it again every time BASE or TARGET changes, until
// interrupted.
func watchCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	config.Config.Namespace = "watch"

	base, target, err := positional(cmd)
	if err != nil {
		return err
	}

	if loc, err := source.Parse(base); err != nil {
		return err
	} else if loc.Remote() {
		return fmt.Errorf("watch needs a local base, got %s", loc)
	}

	basePath, err := util.ResolveFile(base)
	if err != nil {
		return fmt.Errorf("invalid base %s: %w", base, err)
	}
	targetPath, err := util.ResolveFile(target)
	if err != nil {
		return fmt.Errorf("invalid target %s: %w", target, err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	run := func() {
		if _, err := runCheck(ctx, cmd, basePath, targetPath); err != nil {
			fmt.Fprintln(cmd.Root().ErrWriter, err)
		}
	}

	run()
	return watchFiles(ctx, []string{basePath, targetPath}, cmd.Duration("debounce"), run)
}

// watchFiles calls onChange once per burst of changes to any of paths. The
// parent directories are watched so that editors which replace files on save
// are still seen. It returns when ctx is done.
func watchFiles(ctx context.Context, paths []string, debounce time.Duration, onChange func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer w.Close()

	names := map[string]bool{}
	var dirs []string
	for _, p := range paths {
		names[filepath.Clean(p)] = true
		if d := filepath.Dir(p); !slices.Contains(dirs, d) {
			dirs = append(dirs, d)
		}
	}

	for _, d := range dirs {
		if err := w.Add(d); err != nil {
			return fmt.Errorf("failed to watch %s: %w", d, err)
		}
		log.Debugf("watching: dir=%s", d)
	}

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			log.Debug("watch stopped")
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !names[filepath.Clean(ev.Name)] || ev.Op == fsnotify.Chmod {
				continue
			}
			log.Tracef("watch event: %s", ev)
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(debounce)
			fire = timer.C

		case <-fire:
			fire = nil
			onChange()

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warnf("watch error: err=%v", err)
		}
	}
}

func watchCommandBuilder(meta meta.Meta) *cli.Command {
	cfgFile := meta.Config.Source
	return &cli.Command{
		Name:      "watch",
		Usage:     "re-run check whenever the base or target changes",
		UsageText: "inidrift watch [options] BASE TARGET",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: slices.Concat(
			NewCommonFlags("watch", cfgFile),
			[]cli.Flag{NewDebounceFlag()},
		),
		Action: watchCommandAction,
	}
}
