// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package source reads and writes the documents inidrift compares. A base may
// be a local path or an s3://bucket/key object; a target is always a local
// file, and a target that cannot be read is treated as an empty document.
package source
