// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// SelectAdditions lets the user choose which missing lines a merge should add.
// All are preselected. The returned set holds positions into results; ok is
// false when the user quit without confirming.
func SelectAdditions(results []Result) (selected map[int]bool, ok bool, err error) {
	m := newPicker(results)
	if len(m.items) == 0 {
		return map[int]bool{}, true, nil
	}

	p := tea.NewProgram(m)
	final, err := p.Run()
	if err != nil {
		return nil, false, fmt.Errorf("failed to run selector: %w", err)
	}

	fm := final.(picker)
	if fm.aborted {
		return nil, false, nil
	}
	return fm.selected, true, nil
}

type pickItem struct {
	pos  int
	line int
	text string
}

type picker struct {
	items    []pickItem
	cursor   int
	selected map[int]bool
	aborted  bool
}

func newPicker(results []Result) picker {
	m := picker{selected: map[int]bool{}}
	for i, r := range results {
		if r.Found() {
			continue
		}
		m.items = append(m.items, pickItem{pos: i, line: i + 1, text: Placeholder(r.Base)})
		m.selected[i] = true
	}
	return m
}

func (m picker) Init() tea.Cmd { return nil }

func (m picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		m.aborted = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case " ":
		pos := m.items[m.cursor].pos
		if m.selected[pos] {
			delete(m.selected, pos)
		} else {
			m.selected[pos] = true
		}
	case "a":
		if len(m.selected) == len(m.items) {
			m.selected = map[int]bool{}
		} else {
			for _, it := range m.items {
				m.selected[it.pos] = true
			}
		}
	case "enter":
		return m, tea.Quit
	}
	return m, nil
}

func (m picker) View() string {
	var b strings.Builder
	b.WriteString("Select lines to add:\n\n")
	for i, it := range m.items {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}
		mark := " "
		if m.selected[it.pos] {
			mark = "x"
		}
		fmt.Fprintf(&b, "%s [%s] %4d %s\n", cursor, mark, it.line, it.text)
	}
	b.WriteString("\nSPACE: toggle, A: all, ENTER: go, Q/ESCAPE: quit\n")
	return b.String()
}
