// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
)

// TableWriter renders rows as a borderless table with a bold header row.
func TableWriter(w io.Writer, headers []string, rows [][]string, color bool) {
	if w == nil {
		w = os.Stdout
	}

	// Nothing to show.
	if len(rows) == 0 {
		return
	}

	var (
		headerStyle = lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
		cellStyle   = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
	)

	if color {
		_, _, _, headerColor := getColors("colors")
		headerStyle = headerStyle.Foreground(headerColor)
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := cellStyle
			if row == table.HeaderRow {
				style = headerStyle
			}
			if col > 0 {
				style = style.PaddingLeft(2)
			}
			return style
		}).
		Headers(headers...).
		BorderHeader(false).
		Rows(rows...)

	fmt.Fprintln(w, t)
}
