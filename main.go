// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/tfctl/inidrift/internal/cacheutil"
	"github.com/tfctl/inidrift/internal/command"
	"github.com/tfctl/inidrift/internal/config"
	"github.com/tfctl/inidrift/internal/log"
	"github.com/tfctl/inidrift/internal/version"
)

var ctx = context.Background()

// commands are the subcommand names known to the app.
var commands = []string{"check", "merge", "watch", "restore", "completion", "help", "h"}

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// processCommandArgs handles command-specific argument processing.
func processCommandArgs(args []string) []string {
	args = rewriteLegacy(args)
	log.Debugf("args after legacy rewrite: args=%v", args)

	if args[1] == "completion" {
		// Short-circuit completion: pass args directly.
		return args
	}

	args = processSetOnly(args)
	log.Debugf("args after set processing: args=%v", args)
	return args
}

// rewriteLegacy turns the original invocation, "inidrift BASE TARGET
// [--check|--merge]", into "inidrift check|merge BASE TARGET". The last of
// --check and --merge wins; check is the default.
func rewriteLegacy(args []string) []string {
	first := args[1]
	if slices.Contains(commands, first) {
		return args
	}
	if strings.HasPrefix(first, "-") && first != "--check" && first != "--merge" {
		return args
	}

	action := "check"
	rest := make([]string, 0, len(args))
	for _, a := range args[1:] {
		switch a {
		case "--check":
			action = "check"
		case "--merge":
			action = "merge"
		default:
			rest = append(rest, a)
		}
	}

	return append([]string{args[0], action}, rest...)
}

// processSetOnly handles the @set logic for all commands, expanding the
// <command>.<set> config list at the @set position. A bare "@" names the
// "defaults" set.
func processSetOnly(args []string) []string {
	idx := 2
	if len(args) <= idx {
		return args
	}

	set := "defaults"
	removeIdx := -1
	for i, a := range args[idx:] {
		if strings.HasPrefix(a, "@") {
			if a != "@" {
				set = a[1:]
			}
			removeIdx = idx + i
			break
		}
	}
	if removeIdx == -1 {
		return args
	}

	setArgs, err := config.GetStringSlice(args[1] + "." + set)
	if err != nil {
		log.Warnf("set %s.%s not found in config", args[1], set)
	}

	out := make([]string, 0, len(args)+len(setArgs))
	out = append(out, args[:removeIdx]...)
	for _, arg := range setArgs {
		out = append(out, strings.Fields(arg)...)
	}
	out = append(out, args[removeIdx+1:]...)
	return out
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	// Pre-create cache directory when caching is enabled.
	if _, ok, err := cacheutil.EnsureBaseDir(); err != nil && ok {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("cache ensure err: err=%v", err)
	}

	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		if errors.Is(err, command.ErrDrift) {
			log.Debugf("app run drift: err=%v", err)
			return 3
		}
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = handleNakedCommand(args)

	// If --help appears anywhere, skip command processing and let the CLI handle it.
	helpFound := false
	for _, a := range args {
		if a == "--help" || a == "-h" {
			helpFound = true
			break
		}
	}

	if !helpFound {
		args = processCommandArgs(args)
	}

	return initAndRunApp(args)
}
