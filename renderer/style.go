package renderer

import "github.com/charmbracelet/lipgloss"

// Style controls how built-in renderers draw widgets.
type Style struct {
	Frame    lipgloss.Style
	Label    lipgloss.Style
	Required lipgloss.Style
	Input    lipgloss.Style
	Muted    lipgloss.Style
	Drag     lipgloss.Style
	Tag      lipgloss.Style

	// Property editor rows.
	PropKey     lipgloss.Style
	PropFocused lipgloss.Style
	PropChoice  lipgloss.Style

	// Widths in cells. Labels longer than LabelWidth are truncated.
	LabelWidth int
	InputWidth int
}

func DefaultStyle() Style {
	return Style{
		Frame:       lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		Label:       lipgloss.NewStyle().Bold(true),
		Required:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Input:       lipgloss.NewStyle().Underline(true),
		Muted:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Drag:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Tag:         lipgloss.NewStyle().Foreground(lipgloss.Color("110")),
		PropKey:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12),
		PropFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		PropChoice:  lipgloss.NewStyle().Foreground(lipgloss.Color("110")),
		LabelWidth:  32,
		InputWidth:  24,
	}
}
