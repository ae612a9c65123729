// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package ini classifies the physical lines of an INI-style document. Each
// line is looked at in isolation and becomes a section header, a key/value
// pair, or anything else (comments, blanks, malformed headers). There is no
// support for quoting, escaping or continuation lines.
package ini
