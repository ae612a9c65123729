// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output turns diff results into a drift report and emits it as
// annotated text, JSON or YAML. The same report drives both check and merge:
// its rendered line stream is exactly what merge writes to the target.
package output
