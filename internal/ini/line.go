// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package ini

import (
	"strings"
	"unicode"
)

// Kind identifies which variant a Line holds.
type Kind int

const (
	KindOther Kind = iota
	KindSection
	KindKeyValue
)

func (k Kind) String() string {
	switch k {
	case KindSection:
		return "section"
	case KindKeyValue:
		return "keyvalue"
	default:
		return "other"
	}
}

// Separator is the character that split a key from its value.
type Separator int

const (
	SeparatorEquals Separator = iota
	SeparatorColon
)

// String returns the separator character itself.
func (s Separator) String() string {
	if s == SeparatorColon {
		return ":"
	}
	return "="
}

// Line is one classified physical line. Raw is always the untouched input.
// Name is only set for KindSection; Key, Separator and Value only for
// KindKeyValue.
type Line struct {
	Kind      Kind
	Raw       string
	Name      string
	Key       string
	Separator Separator
	Value     string
}

// String returns the raw text of the line.
func (l Line) String() string {
	return l.Raw
}

// Classify splits text into physical lines and classifies each one.
func Classify(text string) []Line {
	raw := SplitLines(text)
	lines := make([]Line, 0, len(raw))
	for _, r := range raw {
		lines = append(lines, ClassifyLine(r))
	}
	return lines
}

// ClassifyLine classifies a single line. Section headers are checked first,
// then key/value pairs split on whichever of '=' or ':' comes first.
//
// The key is cut from the original line, not the trimmed one, so leading
// indentation stays part of the key. Matching relies on that.
func ClassifyLine(line string) Line {
	trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)

	if strings.HasPrefix(trimmed, "[") {
		end := strings.IndexByte(trimmed, ']')
		if end < 0 {
			return Line{Kind: KindOther, Raw: line}
		}
		return Line{Kind: KindSection, Raw: line, Name: trimmed[1:end]}
	}

	idx, sep := separatorIndex(line)
	if idx < 0 {
		return Line{Kind: KindOther, Raw: line}
	}

	return Line{
		Kind:      KindKeyValue,
		Raw:       line,
		Key:       line[:idx],
		Separator: sep,
		Value:     line[idx+1:],
	}
}

// separatorIndex returns the byte offset of the earliest '=' or ':' in s, or
// -1 if there is neither.
func separatorIndex(s string) (int, Separator) {
	eq := strings.IndexByte(s, '=')
	colon := strings.IndexByte(s, ':')

	switch {
	case eq < 0 && colon < 0:
		return -1, SeparatorEquals
	case colon < 0 || (eq >= 0 && eq < colon):
		return eq, SeparatorEquals
	default:
		return colon, SeparatorColon
	}
}

// SplitLines breaks text on '\n', dropping a single trailing '\r' from each
// line. A terminator at the very end does not start another line, so "" and
// "a\n" yield zero and one lines respectively.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	parts := strings.Split(text, "\n")
	for i, p := range parts {
		parts[i] = strings.TrimSuffix(p, "\r")
	}
	return parts
}
