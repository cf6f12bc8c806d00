// ABOUTME: Terminal styling for fitlog output.
// ABOUTME: Adaptive lipgloss palette shared by tables, detail views, and forms.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	ColorAccent = lipgloss.AdaptiveColor{Light: "#399ee6", Dark: "#59c2ff"}
	ColorMuted  = lipgloss.AdaptiveColor{Light: "#828c99", Dark: "#6c7680"}
)

var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent).Padding(0, 1)
	CellStyle   = lipgloss.NewStyle().Padding(0, 1)
	NumberStyle = CellStyle.Align(lipgloss.Right)
	BorderStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorMuted).Width(18)
	TitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
)

// RenderTitle renders a section title.
func RenderTitle(s string) string {
	return TitleStyle.Render(s)
}
