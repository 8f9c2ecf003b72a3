package widget

import "github.com/charmbracelet/lipgloss"

// Widget is anything that renders to a terminal string.
type Widget interface {
	View() string
}

// Func adapts a render function to Widget.
type Func func() string

func (f Func) View() string {
	if f == nil {
		return ""
	}
	return f()
}

// Text is a styled block of text.
type Text struct {
	Content string
	Style   lipgloss.Style
}

func NewText(content string, style lipgloss.Style) Text {
	return Text{Content: content, Style: style}
}

func (t Text) View() string { return t.Style.Render(t.Content) }
