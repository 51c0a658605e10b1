package repl

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("#8B5CF6")
	colorResult  = lipgloss.Color("#06B6D4")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
)

type styles struct {
	banner lipgloss.Style
	result lipgloss.Style
	err    lipgloss.Style
	hint   lipgloss.Style
}

func newStyles(noColor bool) styles {
	if noColor {
		plain := lipgloss.NewStyle()
		return styles{
			banner: plain,
			result: plain,
			err:    plain,
			hint:   plain,
		}
	}

	return styles{
		banner: lipgloss.NewStyle().Foreground(colorPrimary).Bold(true),
		result: lipgloss.NewStyle().Foreground(colorResult),
		err:    lipgloss.NewStyle().Foreground(colorError).Bold(true),
		hint:   lipgloss.NewStyle().Foreground(colorMuted).Italic(true),
	}
}
