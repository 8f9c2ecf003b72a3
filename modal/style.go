package modal

import "github.com/charmbracelet/lipgloss"

// Style controls the modal's rendering.
type Style struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Empty lipgloss.Style
	Hint  lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1),
		Title: lipgloss.NewStyle().Bold(true).MarginBottom(1),
		Empty: lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Italic(true),
		Hint:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1),
	}
}
