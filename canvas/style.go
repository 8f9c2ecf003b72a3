package canvas

import "github.com/charmbracelet/lipgloss"

type Style struct {
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Pending    lipgloss.Style
	Help       lipgloss.Style
	Empty      lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Selected:   lipgloss.NewStyle().Border(lipgloss.ThickBorder(), false, false, false, true).BorderForeground(lipgloss.Color("212")).PaddingLeft(1),
		Unselected: lipgloss.NewStyle().PaddingLeft(2),
		Pending:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		Help:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Empty:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
