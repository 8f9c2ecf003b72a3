package canvas

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

// SetSize sets the canvas area in cells, including the help line.
func (c *Canvas) SetSize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 1 {
		height = 1
	}
	c.viewport.Width = width
	c.viewport.Height = height - 1
	c.refresh()
}

// refresh re-renders the slot list into the viewport.
func (c *Canvas) refresh() {
	st := c.cfg.Style
	if len(c.slots) == 0 {
		c.content = st.Empty.Render("Empty form. Press 1-6 to add a field.")
		c.viewport.SetContent(c.content)
		return
	}

	var sb strings.Builder
	selectedTop := 0
	for i, s := range c.slots {
		if i > 0 {
			sb.WriteString("\n")
		}
		body := s.comp.View()
		if body == "" {
			label := s.comp.DragWidget().View()
			if s.comp.Field() == nil {
				label += st.Pending.Render(" (resolving)")
			} else {
				label += st.Pending.Render(" (no renderer)")
			}
			body = label
		}
		frame := st.Unselected
		if i == c.selected {
			frame = st.Selected
			selectedTop = lipgloss.Height(sb.String()) - 1
		}
		sb.WriteString(frame.Render(body))
	}
	c.content = sb.String()
	c.viewport.SetContent(c.content)

	// Keep the selected slot on screen.
	if h := c.viewport.Height; h > 0 {
		if selectedTop < c.viewport.YOffset || selectedTop >= c.viewport.YOffset+h {
			c.viewport.SetYOffset(selectedTop)
		}
	}
}

func (c *Canvas) View() string {
	// Before the first WindowSizeMsg the viewport has no area.
	base := c.content
	if c.viewport.Height > 0 {
		base = c.viewport.View()
	}
	base = lipgloss.JoinVertical(lipgloss.Left, base, c.helpView())

	if c.dialog == nil || !c.dialog.modal.Visible() {
		return base
	}
	return overlay.Composite(c.dialog.modal.View(), base, overlay.Center, overlay.Center, 0, 0)
}

func (c *Canvas) helpView() string {
	var parts []string
	for _, b := range c.cfg.KeyMap.bindings() {
		if h := b.Help(); h.Key != "" {
			parts = append(parts, h.Key+" "+h.Desc)
		}
	}
	return c.cfg.Style.Help.Render(strings.Join(parts, " • "))
}
