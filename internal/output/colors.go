// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"image/color"
	"os"

	"github.com/charmbracelet/lipgloss/v2"

	"github.com/tfctl/inidrift/internal/config"
)

// getPalette returns marker styles. Each color comes from the config under
// key (e.g. colors.missing) or falls back to a default picked for the
// terminal background.
func getPalette(key string) palette {
	missing, emptied, removed, header := getColors(key)
	base := lipgloss.NewStyle().TabWidth(lipgloss.NoTabConversion)
	return palette{
		header:  styled(base.Bold(true).Foreground(header)),
		missing: styled(base.Foreground(missing)),
		emptied: styled(base.Foreground(emptied)),
		removed: styled(base.Foreground(removed)),
	}
}

func styled(s lipgloss.Style) paint {
	return func(str string) string { return s.Render(str) }
}

// getColors resolves the configured colors. Users who set colors explicitly
// are left to pick values that suit their theme.
func getColors(key string) (missing, emptied, removed, header color.Color) {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	resolveColor := func(key string, light string, dark string) color.Color {
		colorCfg, err := config.GetString(key)
		if err == nil {
			return lipgloss.Color(colorCfg)
		}

		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	missing = resolveColor(key+".missing", "#008700", "#5fd75f")
	emptied = resolveColor(key+".emptied", "#b08800", "#f6be00")
	removed = resolveColor(key+".removed", "#af0000", "#ff5f5f")
	header = resolveColor(key+".header", "#0088a0", "#00c8f0")

	return
}
