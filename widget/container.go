package widget

import "github.com/charmbracelet/lipgloss"

// Container holds the widgets a component currently displays. Hosts keep
// the pointer and re-render it; the owner mutates it in place.
type Container struct {
	items []Widget
	Style lipgloss.Style
}

func NewContainer() *Container {
	return &Container{Style: lipgloss.NewStyle()}
}

// Clear removes every widget.
func (c *Container) Clear() {
	c.items = nil
}

// Add appends w. Nil widgets are ignored.
func (c *Container) Add(w Widget) {
	if w == nil {
		return
	}
	c.items = append(c.items, w)
}

func (c *Container) Len() int { return len(c.items) }

// Widgets returns a copy of the held widgets.
func (c *Container) Widgets() []Widget {
	if len(c.items) == 0 {
		return nil
	}
	return append([]Widget(nil), c.items...)
}

func (c *Container) View() string {
	if len(c.items) == 0 {
		return ""
	}
	parts := make([]string, len(c.items))
	for i, w := range c.items {
		parts[i] = w.View()
	}
	return c.Style.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
