// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/inidrift/internal/cacheutil"
	"github.com/tfctl/inidrift/internal/config"
	"github.com/tfctl/inidrift/internal/log"
	"github.com/tfctl/inidrift/internal/meta"
	"github.com/tfctl/inidrift/internal/output"
	"github.com/tfctl/inidrift/internal/source"
)

// restoreCommandAction is the action handler for the "restore" subcommand. It
// puts back the contents a target had before its last merge, or lists the
// backups with --list.
func restoreCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	config.Config.Namespace = "restore"

	targets := cmd.Args().Slice()
	if len(targets) == 0 {
		return errors.New("expected at least one TARGET")
	}

	if !cacheutil.Enabled() {
		return errors.New("backups are unavailable while caching is disabled (INIDRIFT_CACHE)")
	}

	if cmd.Bool("list") {
		listBackups(cmd, targets)
		return nil
	}

	if len(targets) != 1 {
		return fmt.Errorf("expected exactly one TARGET to restore, got %d", len(targets))
	}
	target := targets[0]

	entry, ok := cacheutil.LoadBackup(target)
	if !ok {
		return fmt.Errorf("no backup found for '%s'", target)
	}

	if err := source.WriteTarget(target, string(entry.Data)); err != nil {
		return err
	}

	if err := cacheutil.DropBackup(target); err != nil {
		log.Warnf("failed to drop backup of %s: err=%v", target, err)
	}

	fmt.Fprintf(outWriter(cmd), "Restored '%s' from backup taken %s.\n", target, humanize.Time(entry.ModTime))
	return nil
}

// listBackups prints one row per target.
func listBackups(cmd *cli.Command, targets []string) {
	rows := make([][]string, 0, len(targets))
	for _, t := range targets {
		entry, ok := cacheutil.LoadBackup(t)
		if !ok {
			rows = append(rows, []string{t, "-", "-"})
			continue
		}
		rows = append(rows, []string{
			t,
			humanize.Time(entry.ModTime),
			humanize.Bytes(uint64(len(entry.Data))),
		})
	}
	output.TableWriter(outWriter(cmd), []string{"TARGET", "TAKEN", "SIZE"}, rows, cmd.Bool("color"))
}

func restoreCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "restore",
		Usage:     "undo the last merge of a target",
		UsageText: "inidrift restore [--list] TARGET...",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "list",
				Aliases:     []string{"l"},
				Usage:       "list the available backups instead of restoring",
				HideDefault: true,
			},
			NewColorFlag(),
		},
		Action: restoreCommandAction,
	}
}
