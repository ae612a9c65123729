// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"slices"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/inidrift/internal/cacheutil"
	"github.com/tfctl/inidrift/internal/config"
	"github.com/tfctl/inidrift/internal/differ"
	"github.com/tfctl/inidrift/internal/log"
	"github.com/tfctl/inidrift/internal/meta"
	"github.com/tfctl/inidrift/internal/output"
	"github.com/tfctl/inidrift/internal/source"
)

// selectAdditions is swapped out in tests to avoid a terminal.
var selectAdditions = differ.SelectAdditions

// mergeCommandAction is the action handler for the "merge" subcommand. It
// rewrites TARGET with every base line, adding missing keys with empty values.
func mergeCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	config.Config.Namespace = "merge"

	base, target, err := positional(cmd)
	if err != nil {
		return err
	}

	docs, err := loadDocuments(ctx, cmd, base, target)
	if err != nil {
		return err
	}

	results := differ.Diff(docs.baseText, docs.targetText)
	rpt := output.Build(output.ModeMerge, docs.base.String(), docs.target, results)

	if cmd.Bool("select") {
		keep, ok, err := selectAdditions(results)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(noticeWriter(cmd), "Merge cancelled. Nothing was written.")
			return nil
		}
		rpt = rpt.Keep(keep)
	}

	merged := rpt.Content()

	if cmd.Bool("dry-run") {
		changes := differ.Preview(docs.targetText, merged)
		output.PreviewWriter(outWriter(cmd), docs.target, changes, cmd.Bool("color"))
		return driftResult(cmd, rpt)
	}

	if docs.found && !cmd.Bool("no-backup") {
		backup(docs.target, docs.targetText)
	}

	if err := source.WriteTarget(docs.target, merged); err != nil {
		return err
	}

	if err := emit(cmd, rpt); err != nil {
		return err
	}

	return driftResult(cmd, rpt)
}

// backup saves the current target and purges stale backups. Failures are
// logged; they never block a merge.
func backup(target, text string) {
	hours, _ := config.GetInt("cache.purge_hours", 720) //nolint:mnd
	if err := cacheutil.Purge(hours); err != nil {
		log.Warnf("cache purge failed: err=%v", err)
	}

	if err := cacheutil.SaveBackup(target, []byte(text)); err != nil {
		log.Warnf("backup of %s failed: err=%v", target, err)
		return
	}
	log.Debugf("backup saved: target=%s", target)
}

func mergeCommandBuilder(meta meta.Meta) *cli.Command {
	cfgFile := meta.Config.Source
	return &cli.Command{
		Name:      "merge",
		Usage:     "add keys missing from a target, with empty values",
		UsageText: "inidrift merge [options] BASE TARGET",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: slices.Concat(
			NewCommonFlags("merge", cfgFile),
			NewS3Flags(cfgFile),
			NewMergeFlags(),
		),
		Action: mergeCommandAction,
	}
}
