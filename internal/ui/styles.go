package ui

import "github.com/charmbracelet/lipgloss"

// styles bundles the lipgloss styles derived from the active theme, built
// once per theme switch instead of per frame.
type styles struct {
	header      lipgloss.Style
	canvas      lipgloss.Style
	sidebar     lipgloss.Style
	label       lipgloss.Style
	value       lipgloss.Style
	activeParam lipgloss.Style
	graph       lipgloss.Style
	help        lipgloss.Style
	warning     lipgloss.Style
	recording   lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		header: lipgloss.NewStyle().Foreground(t.Accent).Bold(true).MarginBottom(1),
		canvas: lipgloss.NewStyle().Padding(1, 2),
		sidebar: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.Muted).
			Padding(1, 2).
			Width(42),
		label:       lipgloss.NewStyle().Foreground(t.Muted).Width(12),
		value:       lipgloss.NewStyle().Foreground(t.Text),
		activeParam: lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		graph:       lipgloss.NewStyle().Foreground(t.Accent).Padding(1, 0),
		help:        lipgloss.NewStyle().Foreground(t.Muted).MarginTop(1),
		warning:     lipgloss.NewStyle().Foreground(t.Warning).Bold(true),
		recording:   lipgloss.NewStyle().Foreground(t.Danger).Bold(true),
	}
}
