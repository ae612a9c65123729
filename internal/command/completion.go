// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/inidrift/internal/meta"
)

const bashCompletionScript = `# bash completion for inidrift
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_inidrift()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "check merge watch restore completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local common="--color -c --fail-on-drift --filter -f --output -o"
    local s3="--profile --region"

    case "$cmd" in
        check)
            local opts="$common $s3"
            ;;
        merge)
            local opts="$common $s3 --dry-run -n --no-backup --select"
            ;;
        watch)
            local opts="$common --debounce"
            ;;
        restore)
            local opts="--color -c --list -l"
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$common"
            ;;
    esac

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text json yaml" -- "$cur") )
        return 0
    fi

    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
        return 0
    fi

    # BASE and TARGET are files
    COMPREPLY=( $(compgen -f -- "$cur") )
    return 0
}

complete -o filenames -F _inidrift inidrift
`

const zshCompletionScript = `#compdef inidrift

_inidrift() {
  local -a cmds
  cmds=(
    'check:report keys missing or emptied in a target'
    'merge:add keys missing from a target, with empty values'
    'watch:re-run check whenever the base or target changes'
    'restore:undo the last merge of a target'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '(-c --color)'{-c,--color}'[enable colored text]'
  '--fail-on-drift[exit 3 on drift]'
  '(-f --filter)'{-f,--filter}'[filters to apply]:filters'
  '(-o --output)'{-o,--output}'[output format]:format:(text json yaml)'
  )

  local -a s3
  s3=(
  '--profile[AWS profile for s3:// base]:profile'
  '--region[AWS region for s3:// base]:region'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'inidrift commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    check)
      _arguments -C \
        $common \
        $s3 \
        '1:base:_files' \
        '2:target:_files'
      ;;
    merge)
      _arguments -C \
        $common \
        $s3 \
        '(-n --dry-run)'{-n,--dry-run}'[preview without writing]' \
        '--no-backup[do not back up the target]' \
        '--select[choose lines to add]' \
        '1:base:_files' \
        '2:target:_files'
      ;;
    watch)
      _arguments -C \
        $common \
        '--debounce[quiet period before re-checking]:duration' \
        '1:base:_files' \
        '2:target:_files'
      ;;
    restore)
      _arguments -C \
        '(-c --color)'{-c,--color}'[enable colored text]' \
        '(-l --list)'{-l,--list}'[list backups]' \
        '*:target:_files'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C $common '*:file:_files'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _inidrift inidrift
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	w := outWriter(cmd)

	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	if shell == "" {
		// Try to detect from SHELL.
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			shell = "zsh"
		case strings.HasSuffix(sh, "bash"):
			shell = "bash"
		}
	}

	switch shell {
	case "bash":
		fmt.Fprint(w, bashCompletionScript)
	case "zsh":
		fmt.Fprint(w, zshCompletionScript)
	default:
		fmt.Fprintln(cmd.Root().ErrWriter, "usage: inidrift completion [bash|zsh]")
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "inidrift completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
