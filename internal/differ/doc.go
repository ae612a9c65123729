// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package differ aligns the lines of a base INI document against a target
// document. Lines are matched by section-scoped identity (section name, key
// name, or exact raw text) rather than by position, so a target may be
// reordered, padded with blank lines, or missing whole sections without
// producing false mismatches.
package differ
