package renderer

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/formslot/form"
	"github.com/iw2rmb/formslot/internal/grapheme"
	"github.com/iw2rmb/formslot/modal"
	"github.com/iw2rmb/formslot/widget"
)

// base carries the binding shared by every built-in renderer.
type base struct {
	field *form.Definition
	host  Host
	path  form.Path
	style Style
}

func newBase(def *form.Definition, st Style) base {
	return base{field: def, style: st}
}

func (b *base) Init(host Host, path form.Path) {
	b.host = host
	b.path = path
}

func (b *base) SetField(def *form.Definition) { b.field = def }

func (b *base) Field() *form.Definition { return b.field }

func (b *base) Path() form.Path { return b.path }

func (b *base) DragWidget() widget.Widget {
	code := form.FieldType("")
	if b.field != nil {
		code = b.field.Code
	}
	return widget.NewText(
		"⠿ "+b.style.Tag.Render("["+code.String()+"]")+" "+b.labelText(),
		b.style.Drag,
	)
}

func (b *base) LoadFieldProperties(m *modal.Modal) {
	if m == nil || b.host == nil {
		return
	}
	m.SetProperties(NewPropertyForm(b.host, b.style))
}

func (b *base) labelText() string {
	if b.field == nil {
		return ""
	}
	text := grapheme.SingleLine(b.field.DisplayLabel())
	return grapheme.Truncate(text, b.style.LabelWidth, "…")
}

func (b *base) labelView() string {
	out := b.style.Label.Render(b.labelText())
	if b.field != nil && b.field.Required {
		out += b.style.Required.Render(" *")
	}
	return out
}

// frame stacks the label over body inside the renderer frame.
func (b *base) frame(body string) widget.Widget {
	return widget.NewText(lipgloss.JoinVertical(lipgloss.Left, b.labelView(), body), b.style.Frame)
}

func (b *base) placeholder(fallback string) string {
	if b.field != nil && b.field.Placeholder != "" {
		return grapheme.SingleLine(b.field.Placeholder)
	}
	return fallback
}
