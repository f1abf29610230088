// Package widgets renders pieces of the inspector.
package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"flmodel/theme"
)

// ChannelRow is one channel rack line of the step grid
type ChannelRow struct {
	Name     string
	Color    int
	Muted    bool
	Selected bool
	Steps    []bool // visible steps only
}

// RenderChannelRow draws a channel's swatch, name and steps. cursor is the
// highlighted step, or -1.
func RenderChannelRow(th *theme.Theme, row ChannelRow, cursor int) string {
	var out strings.Builder

	swatch := th.Symbols.Swatch
	if row.Muted {
		swatch = th.Symbols.Muted
	}
	out.WriteString(lipgloss.NewStyle().Foreground(th.Host(row.Color)).Render(string(swatch)))
	out.WriteString(" ")

	nameStyle := lipgloss.NewStyle().Foreground(th.Muted()).Width(14)
	if row.Selected {
		nameStyle = nameStyle.Foreground(th.FG())
	}
	out.WriteString(nameStyle.Render(truncate(row.Name, 13)))

	on := lipgloss.NewStyle().Foreground(th.Active())
	off := lipgloss.NewStyle().Foreground(th.Muted())
	at := lipgloss.NewStyle().Foreground(th.Accent())
	for i, set := range row.Steps {
		if i > 0 && i%4 == 0 {
			out.WriteString(" ")
		}
		switch {
		case i == cursor && set:
			out.WriteString(at.Render(string(th.Symbols.CursorActive)))
		case i == cursor:
			out.WriteString(at.Render(string(th.Symbols.CursorEmpty)))
		case set:
			out.WriteString(on.Render(string(th.Symbols.StepActive)))
		default:
			out.WriteString(off.Render(string(th.Symbols.StepEmpty)))
		}
	}
	return out.String()
}

// RenderStepRuler numbers every fourth step starting at offset
func RenderStepRuler(th *theme.Theme, offset, steps int) string {
	var out strings.Builder
	out.WriteString(strings.Repeat(" ", 16))
	for i := 0; i < steps; i += 4 {
		out.WriteString(fmt.Sprintf("%-5d", offset+i+1))
	}
	return lipgloss.NewStyle().Foreground(th.Muted()).Render(strings.TrimRight(out.String(), " "))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
