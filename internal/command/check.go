// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"slices"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/inidrift/internal/config"
	"github.com/tfctl/inidrift/internal/differ"
	"github.com/tfctl/inidrift/internal/log"
	"github.com/tfctl/inidrift/internal/meta"
	"github.com/tfctl/inidrift/internal/output"
)

// checkCommandAction is the action handler for the "check" subcommand. It
// reports the drift of TARGET against BASE and never writes.
func checkCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	config.Config.Namespace = "check"

	base, target, err := positional(cmd)
	if err != nil {
		return err
	}

	rpt, err := runCheck(ctx, cmd, base, target)
	if err != nil {
		return err
	}

	return driftResult(cmd, rpt)
}

// runCheck diffs and emits one check report.
func runCheck(ctx context.Context, cmd *cli.Command, base, target string) (output.Report, error) {
	docs, err := loadDocuments(ctx, cmd, base, target)
	if err != nil {
		return output.Report{}, err
	}

	results := differ.Diff(docs.baseText, docs.targetText)
	rpt := output.Build(output.ModeCheck, docs.base.String(), docs.target, results)

	if err := emit(cmd, rpt); err != nil {
		return output.Report{}, err
	}
	return rpt, nil
}

func checkCommandBuilder(meta meta.Meta) *cli.Command {
	cfgFile := meta.Config.Source
	return &cli.Command{
		Name:      "check",
		Usage:     "report keys missing or emptied in a target",
		UsageText: "inidrift check [options] BASE TARGET",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags:  slices.Concat(NewCommonFlags("check", cfgFile), NewS3Flags(cfgFile)),
		Action: checkCommandAction,
	}
}
