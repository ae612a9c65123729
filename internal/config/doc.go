// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for inidrift's user
// configuration. The configuration is a YAML document located by
// INIDRIFT_CFG_FILE or in the user's configuration directory, typically:
//   - Linux: $XDG_CONFIG_HOME/inidrift.yaml or $HOME/.config/inidrift.yaml
//   - macOS: $HOME/Library/Application Support/inidrift.yaml
//   - Windows: %APPDATA%/inidrift.yaml
//
// Keys are addressed with dotted paths. Command-specific settings live under
// the command name (e.g. "merge.backup") and are found through Namespace.
package config
