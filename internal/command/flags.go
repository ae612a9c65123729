// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"os"
	"time"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/tfctl/inidrift/internal/config"
)

// NewMergeFlags returns the flags specific to merge.
func NewMergeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "dry-run",
			Aliases:     []string{"n"},
			Usage:       "show the changes a merge would make without writing",
			HideDefault: true,
		},
		&cli.BoolFlag{
			Name:        "select",
			Usage:       "interactively choose which missing lines to add",
			HideDefault: true,
		},
		&cli.BoolFlag{
			Name:        "no-backup",
			Usage:       "do not save the previous target in the cache",
			Sources:     cli.EnvVars("INIDRIFT_NO_BACKUP"),
			HideDefault: true,
		},
	}
}

// NewColorFlag constructs the --color flag. It defaults to on when stdout is
// a terminal.
func NewColorFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:    "color",
		Aliases: []string{"c"},
		Usage:   "enable colored text output",
		Value:   stdoutIsTerminal(),
	}
}

// NewCommonFlags returns the flags shared by the diffing commands. When
// cfgFile is set, output defaults are also looked up in it under ns.
func NewCommonFlags(ns string, cfgFile string) (flags []cli.Flag) {
	output := &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output format (text, json, yaml)",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("INIDRIFT_OUTPUT"),
		),
		Value: "text",
		Validator: func(value string) error {
			return FlagValidators(value, OutputValidator)
		},
	}

	if cfgFile != "" {
		output = NameSpacedValueChainFlagFromConfigFile(ns, cfgFile, output)
	}

	flags = []cli.Flag{
		output,
		NewColorFlag(),
		&cli.StringFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "comma-separated list of filters to apply to the listed lines",
		},
		&cli.BoolFlag{
			Name:        "fail-on-drift",
			Usage:       "exit with status 3 when keys are missing or emptied",
			Sources:     cli.EnvVars("INIDRIFT_FAIL_ON_DRIFT"),
			HideDefault: true,
		},
	}

	return
}

// NewS3Flags returns the flags that tune fetching an s3:// base. Defaults come
// from the s3 block of cfgFile.
func NewS3Flags(cfgFile string) []cli.Flag {
	region := &cli.StringFlag{
		Name:  "region",
		Usage: "AWS region used to fetch an s3:// base",
	}
	profile := &cli.StringFlag{
		Name:  "profile",
		Usage: "AWS shared config profile used to fetch an s3:// base",
	}

	if cfgFile != "" {
		region = NameSpacedValueChainFlagFromConfigFile("s3", cfgFile, region)
		profile = NameSpacedValueChainFlagFromConfigFile("s3", cfgFile, profile)
	}

	return []cli.Flag{region, profile}
}

// NewDebounceFlag constructs the watch debounce flag, defaulting to
// watch.debounce_ms from the config.
func NewDebounceFlag() *cli.DurationFlag {
	ms, _ := config.GetInt("watch.debounce_ms", 250) //nolint:mnd
	return &cli.DurationFlag{
		Name:  "debounce",
		Usage: "quiet period after a change before re-checking",
		Value: time.Duration(ms) * time.Millisecond,
	}
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}

// stdoutIsTerminal reports whether colored output is a sensible default.
func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) //nolint:gosec
}
