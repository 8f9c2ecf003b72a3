package canvas

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/formslot/event"
	"github.com/iw2rmb/formslot/form"
)

// Update handles msg and returns a command that pumps the event bus when
// deliveries are pending.
func (c *Canvas) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case event.FlushMsg:
		n := c.cfg.Bus.Flush()
		c.log.Debug("flushed event bus", "delivered", n)
	case tea.WindowSizeMsg:
		c.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		cmd = c.handleKey(msg)
	default:
		if c.dialog != nil {
			cmd = c.dialog.slot.comp.Update(msg)
		}
	}
	c.closeFinishedDialog()
	c.refresh()
	return tea.Batch(cmd, c.cfg.Bus.Cmd())
}

func (c *Canvas) handleKey(msg tea.KeyMsg) tea.Cmd {
	if c.dialog != nil {
		return c.dialog.slot.comp.Update(msg)
	}

	km := c.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Up):
		c.selected = clamp(c.selected-1, 0, len(c.slots)-1)
	case key.Matches(msg, km.Down):
		c.selected = clamp(c.selected+1, 0, len(c.slots)-1)
	case key.Matches(msg, km.Configure):
		c.OpenConfiguration(c.selected)
	case key.Matches(msg, km.Remove):
		c.Remove(c.selected)
	case key.Matches(msg, km.Add):
		if code, ok := digitType(msg.String()); ok {
			c.Drop(form.UnboundPlaceholder(code))
		}
	}
	return nil
}

func (c *Canvas) closeFinishedDialog() {
	if c.dialog == nil {
		return
	}
	if c.dialog.finished || !c.dialog.slot.comp.ModalOpen() {
		c.dialog.slot.sync()
		c.dialog = nil
	}
}

// digitType maps "1".."6" to the built-in field types.
func digitType(s string) (form.FieldType, bool) {
	types := form.AllFieldTypes()
	if len(s) != 1 || s[0] < '1' || int(s[0]-'1') >= len(types) {
		return "", false
	}
	return types[s[0]-'1'], true
}
