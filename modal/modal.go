package modal

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/formslot/widget"
)

// Fragment is the property editor a renderer loads into a modal.
type Fragment interface {
	widget.Widget
	Update(msg tea.Msg) tea.Cmd
	Focus() tea.Cmd
}

// KeyMap defines the keys the modal handles itself; everything else goes to
// the fragment.
type KeyMap struct {
	Dismiss key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Dismiss: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

type Modal struct {
	title   string
	dismiss func()
	onHide  []func()
	visible bool

	props  Fragment
	keys   KeyMap
	style  Style
	width  int
	loaded int
}

// New returns a visible modal. dismiss runs when the user closes the dialog
// and is expected to call Hide; a nil dismiss hides directly.
func New(title string, dismiss func()) *Modal {
	return &Modal{
		title:   title,
		dismiss: dismiss,
		visible: true,
		keys:    DefaultKeyMap(),
		style:   DefaultStyle(),
	}
}

func (m *Modal) SetKeyMap(km KeyMap) { m.keys = km }

func (m *Modal) SetStyle(st Style) { m.style = st }

// SetWidth sets the inner width of the dialog. Zero lets content decide.
func (m *Modal) SetWidth(w int) {
	if w < 0 {
		w = 0
	}
	m.width = w
}

func (m *Modal) Title() string { return m.title }

func (m *Modal) Visible() bool { return m.visible }

// AddHideHandler registers fn to run once when the modal is hidden.
// Handlers added after Hide never run.
func (m *Modal) AddHideHandler(fn func()) {
	if fn == nil || !m.visible {
		return
	}
	m.onHide = append(m.onHide, fn)
}

// Hide closes the modal and runs the hide handlers in registration order.
func (m *Modal) Hide() {
	if !m.visible {
		return
	}
	m.visible = false
	handlers := m.onHide
	m.onHide = nil
	for _, fn := range handlers {
		fn()
	}
}

// Dismiss runs the dismiss command.
func (m *Modal) Dismiss() {
	if !m.visible {
		return
	}
	if m.dismiss == nil {
		m.Hide()
		return
	}
	m.dismiss()
}

// SetProperties installs f as the property editor, replacing any previous one.
func (m *Modal) SetProperties(f Fragment) tea.Cmd {
	m.props = f
	m.loaded++
	if f == nil {
		return nil
	}
	return f.Focus()
}

func (m *Modal) Properties() Fragment { return m.props }

// Loads returns how many times a fragment was installed.
func (m *Modal) Loads() int { return m.loaded }

func (m *Modal) Update(msg tea.Msg) tea.Cmd {
	if !m.visible {
		return nil
	}
	if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, m.keys.Dismiss) {
		m.Dismiss()
		return nil
	}
	if m.props == nil {
		return nil
	}
	return m.props.Update(msg)
}

func (m *Modal) View() string {
	if !m.visible {
		return ""
	}
	body := m.style.Empty.Render("No properties available.")
	if m.props != nil {
		body = m.props.View()
	}
	parts := []string{m.style.Title.Render(m.title), body}
	if h := m.keys.Dismiss.Help(); h.Key != "" {
		parts = append(parts, m.style.Hint.Render(h.Key+" "+h.Desc))
	}
	frame := m.style.Frame
	if m.width > 0 {
		frame = frame.Width(m.width)
	}
	return frame.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
