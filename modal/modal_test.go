package modal

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

type stubFragment struct {
	view    string
	msgs    []tea.Msg
	focused int
}

func (f *stubFragment) View() string { return f.view }

func (f *stubFragment) Update(msg tea.Msg) tea.Cmd {
	f.msgs = append(f.msgs, msg)
	return nil
}

func (f *stubFragment) Focus() tea.Cmd {
	f.focused++
	return nil
}

func TestHide_RunsHandlersOnce(t *testing.T) {
	m := New("Properties", nil)
	var order []string
	m.AddHideHandler(func() { order = append(order, "first") })
	m.AddHideHandler(func() { order = append(order, "second") })

	m.Hide()
	m.Hide()
	if strings.Join(order, ",") != "first,second" {
		t.Fatalf("handlers: got %v, want [first second]", order)
	}
	if m.Visible() {
		t.Fatalf("modal must be hidden")
	}

	m.AddHideHandler(func() { order = append(order, "late") })
	m.Hide()
	if len(order) != 2 {
		t.Fatalf("handler added after hide ran: %v", order)
	}
}

func TestDismiss_RunsCommand(t *testing.T) {
	var m *Modal
	dismissed := 0
	m = New("Properties", func() {
		dismissed++
		m.Hide()
	})
	hidden := 0
	m.AddHideHandler(func() { hidden++ })

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if dismissed != 1 || hidden != 1 {
		t.Fatalf("dismiss/hide: got (%d,%d), want (1,1)", dismissed, hidden)
	}

	m.Dismiss()
	if dismissed != 1 {
		t.Fatalf("dismiss of hidden modal must be a no-op")
	}
}

func TestUpdate_ForwardsToFragment(t *testing.T) {
	m := New("Properties", nil)
	f := &stubFragment{view: "name: a"}
	m.SetProperties(f)
	if f.focused != 1 || m.Loads() != 1 {
		t.Fatalf("fragment must be focused once on load")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if len(f.msgs) != 1 {
		t.Fatalf("forwarded msgs: got %d, want 1", len(f.msgs))
	}

	m.Hide()
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	if len(f.msgs) != 1 {
		t.Fatalf("hidden modal must not forward input")
	}
}

func TestView_ShowsTitleAndFragment(t *testing.T) {
	m := New("Field properties", nil)
	if !strings.Contains(m.View(), "No properties available.") {
		t.Fatalf("empty modal view must show placeholder:\n%s", m.View())
	}

	m.SetProperties(&stubFragment{view: "name: firstName"})
	v := m.View()
	for _, want := range []string{"Field properties", "name: firstName", "esc close"} {
		if !strings.Contains(v, want) {
			t.Fatalf("view missing %q:\n%s", want, v)
		}
	}

	m.Hide()
	if m.View() != "" {
		t.Fatalf("hidden modal must render empty")
	}
}
