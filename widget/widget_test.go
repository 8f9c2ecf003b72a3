package widget

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestContainer_ClearAndAdd(t *testing.T) {
	c := NewContainer()
	if c.View() != "" {
		t.Fatalf("empty container view: got %q, want empty", c.View())
	}

	c.Add(NewText("one", lipgloss.NewStyle()))
	c.Add(nil)
	c.Add(Func(func() string { return "two" }))
	if c.Len() != 2 {
		t.Fatalf("len: got %d, want 2", c.Len())
	}
	if got, want := c.View(), "one\ntwo"; got != want {
		t.Fatalf("view: got %q, want %q", got, want)
	}

	c.Clear()
	if c.Len() != 0 || c.Widgets() != nil {
		t.Fatalf("clear must drop all widgets")
	}
}

func TestContainer_WidgetsIsCopy(t *testing.T) {
	c := NewContainer()
	c.Add(NewText("a", lipgloss.NewStyle()))
	ws := c.Widgets()
	ws[0] = NewText("b", lipgloss.NewStyle())
	if got := c.View(); got != "a" {
		t.Fatalf("container changed through Widgets copy: %q", got)
	}
}

func TestFunc_Nil(t *testing.T) {
	var f Func
	if got := f.View(); got != "" {
		t.Fatalf("nil func view: got %q, want empty", got)
	}
}
