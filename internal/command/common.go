// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/inidrift/internal/log"
	"github.com/tfctl/inidrift/internal/meta"
	"github.com/tfctl/inidrift/internal/output"
	"github.com/tfctl/inidrift/internal/source"
)

// ErrDrift is returned by check and merge when --fail-on-drift is set and the
// report shows missing or emptied keys.
var ErrDrift = errors.New("drift detected")

// documents holds the two inputs of a diff.
type documents struct {
	base       source.Location
	baseText   string
	target     string
	targetText string
	found      bool
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// positional returns the BASE and TARGET arguments.
func positional(cmd *cli.Command) (base, target string, err error) {
	args := cmd.Args().Slice()
	if err := FlagValidators(args, ArgCountValidator("BASE", "TARGET")); err != nil {
		return "", "", err
	}
	return args[0], args[1], nil
}

// loadDocuments reads base and target. An unreadable target degrades to an
// empty document after a notice.
func loadDocuments(ctx context.Context, cmd *cli.Command, base, target string) (documents, error) {
	loc, err := source.Parse(base)
	if err != nil {
		return documents{}, err
	}

	baseText, err := source.ReadBase(ctx, loc, awsOptions(cmd)...)
	if err != nil {
		return documents{}, err
	}

	targetText, found := source.ReadTarget(target)
	if !found {
		fmt.Fprintf(noticeWriter(cmd), "Target file '%s' not found. Proceeding with empty content.\n", target)
	}

	return documents{
		base:       loc,
		baseText:   baseText,
		target:     target,
		targetText: targetText,
		found:      found,
	}, nil
}

// awsOptions maps --profile and --region onto source options.
func awsOptions(cmd *cli.Command) (opts []source.Option) {
	if p := cmd.String("profile"); p != "" {
		opts = append(opts, source.WithProfile(p))
	}
	if r := cmd.String("region"); r != "" {
		opts = append(opts, source.WithRegion(r))
	}
	return
}

// emit writes the report in the selected format, narrowed by --filter.
func emit(cmd *cli.Command, rpt output.Report) error {
	rpt, err := rpt.Filter(cmd.String("filter"))
	if err != nil {
		return err
	}
	return output.Spit(outWriter(cmd), rpt, output.Options{
		Format: cmd.String("output"),
		Color:  cmd.Bool("color"),
	})
}

// driftResult turns a drifting report into ErrDrift when requested.
func driftResult(cmd *cli.Command, rpt output.Report) error {
	if cmd.Bool("fail-on-drift") && rpt.Drift() {
		log.Debugf("drift: missing=%d emptied=%d", rpt.Missing, rpt.Emptied)
		return ErrDrift
	}
	return nil
}

// outWriter is where reports go.
func outWriter(cmd *cli.Command) io.Writer {
	return cmd.Root().Writer
}

// noticeWriter is where informational messages go. They share stdout with a
// text report but must not corrupt json or yaml output.
func noticeWriter(cmd *cli.Command) io.Writer {
	if f := cmd.String("output"); f != "" && f != "text" {
		return cmd.Root().ErrWriter
	}
	return cmd.Root().Writer
}
