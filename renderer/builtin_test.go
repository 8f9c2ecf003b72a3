package renderer

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/formslot/form"
	"github.com/iw2rmb/formslot/modal"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func render(t *testing.T, def *form.Definition) string {
	t.Helper()
	r, ok := NewDefaultRegistry().RendererFor(def)
	if !ok {
		t.Fatalf("no renderer for %q", def.Code)
	}
	return r.RenderWidget().View()
}

func TestInputRenderers(t *testing.T) {
	tests := []struct {
		name string
		def  *form.Definition
		want []string
	}{
		{
			name: "text with label and required marker",
			def:  &form.Definition{Name: "first", Code: form.FieldTypeText, Label: "First name", Required: true},
			want: []string{"First name *"},
		},
		{
			name: "text falls back to name",
			def:  &form.Definition{Name: "first", Code: form.FieldTypeText},
			want: []string{"first"},
		},
		{
			name: "number placeholder",
			def:  &form.Definition{Name: "age", Code: form.FieldTypeNumber, Label: "Age"},
			want: []string{"Age", "0"},
		},
		{
			name: "date placeholder",
			def:  &form.Definition{Name: "born", Code: form.FieldTypeDate, Label: "Born"},
			want: []string{"Born", "YYYY-MM-DD"},
		},
		{
			name: "custom placeholder",
			def:  &form.Definition{Name: "born", Code: form.FieldTypeDate, Placeholder: "when?"},
			want: []string{"when?"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := render(t, tt.def)
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Fatalf("view %q does not contain %q", got, w)
				}
			}
		})
	}
}

func TestCheckBoxRenderer(t *testing.T) {
	got := render(t, &form.Definition{Name: "agree", Code: form.FieldTypeCheckBox, Label: "Agree"})
	if !strings.Contains(got, "[ ] Agree") {
		t.Fatalf("view %q missing box", got)
	}

	got = render(t, &form.Definition{Name: "agree", Code: form.FieldTypeCheckBox, Label: "Agree", ReadOnly: true})
	if !strings.Contains(got, "[-] Agree") {
		t.Fatalf("read-only view %q missing muted box", got)
	}
}

func TestSelectRenderer(t *testing.T) {
	got := render(t, &form.Definition{Name: "color", Code: form.FieldTypeSelect, Label: "Color"})
	if !strings.Contains(got, "▾ no options") {
		t.Fatalf("empty select view %q", got)
	}

	got = render(t, &form.Definition{
		Name:    "color",
		Code:    form.FieldTypeSelect,
		Options: []form.Option{{Value: "r", Text: "Red"}, {Value: "g"}},
	})
	for _, w := range []string{"▾ choose…", "Red", "g"} {
		if !strings.Contains(got, w) {
			t.Fatalf("view %q does not contain %q", got, w)
		}
	}
}

func TestTextAreaRenderer(t *testing.T) {
	got := render(t, &form.Definition{Name: "bio", Code: form.FieldTypeTextArea, Label: "Bio"})
	if !strings.Contains(got, "Bio") {
		t.Fatalf("view %q missing label", got)
	}
	if lines := strings.Count(got, "\n"); lines < 3 {
		t.Fatalf("expected a multi-line widget, got %d line breaks", lines)
	}
}

func TestRenderer_SetFieldRebindsInPlace(t *testing.T) {
	r, _ := NewDefaultRegistry().RendererFor(&form.Definition{Name: "a", Code: form.FieldTypeText, Label: "Alpha"})
	next := &form.Definition{Name: "b", Code: form.FieldTypeText, Label: "Beta"}
	r.SetField(next)

	if r.Field() != next {
		t.Fatalf("field not rebound")
	}
	if got := r.RenderWidget().View(); !strings.Contains(got, "Beta") || strings.Contains(got, "Alpha") {
		t.Fatalf("view %q still shows old field", got)
	}
}

func TestDragWidget(t *testing.T) {
	label := strings.Repeat("x", 40)
	r, _ := NewDefaultRegistry().RendererFor(&form.Definition{Name: "a", Code: form.FieldTypeNumber, Label: label})

	got := r.DragWidget().View()
	if !strings.HasPrefix(got, "⠿ [number] ") {
		t.Fatalf("drag view %q", got)
	}
	if strings.Contains(got, label) || !strings.HasSuffix(got, "…") {
		t.Fatalf("label not truncated: %q", got)
	}
}

func TestLoadFieldProperties(t *testing.T) {
	def := &form.Definition{Name: "a", Code: form.FieldTypeText}
	r, _ := NewDefaultRegistry().RendererFor(def)
	m := modal.New("Properties", nil)

	// Without a host there is nothing to edit.
	r.LoadFieldProperties(m)
	if m.Properties() != nil {
		t.Fatalf("expected no fragment before Init")
	}

	r.Init(&stubHost{field: def, identity: form.Identity{FormID: "f", FieldName: "a"}}, "forms/f")
	r.LoadFieldProperties(m)
	if _, ok := m.Properties().(*PropertyForm); !ok {
		t.Fatalf("fragment: got %T, want *PropertyForm", m.Properties())
	}
	if m.Loads() != 1 {
		t.Fatalf("loads: got %d, want 1", m.Loads())
	}
	r.LoadFieldProperties(nil)
}
