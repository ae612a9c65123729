// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters narrows report entries with --filter expressions.
//
// A filter is a key-operator-target expression; several are joined with a
// delimiter (default: comma, override with INIDRIFT_FILTER_DELIM). A candidate
// passes when it matches every filter. Operators, each negatable with a
// leading '!':
//
//   - = : exact match
//   - ~ : case-insensitive match
//   - ^ : prefix match
//   - @ : contains substring
//   - / : regex match
//   - < : less than (numeric when the value is a number)
//   - > : greater than (numeric when the value is a number)
//
// Examples:
//
//   - "status=missing" : lines missing from the target
//   - "section=db,status!=present" : drift inside [db]
//   - "key^log_" : keys starting with log_
//   - "line>100" : lines past line 100
package filters
