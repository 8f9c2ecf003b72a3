package renderer

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/iw2rmb/formslot/form"
	"github.com/iw2rmb/formslot/internal/grapheme"
	"github.com/iw2rmb/formslot/widget"
)

type builtin struct {
	code    form.FieldType
	factory Factory
}

func builtins() []builtin {
	return []builtin{
		{code: form.FieldTypeText, factory: NewTextRenderer},
		{code: form.FieldTypeTextArea, factory: NewTextAreaRenderer},
		{code: form.FieldTypeNumber, factory: NewNumberRenderer},
		{code: form.FieldTypeCheckBox, factory: NewCheckBoxRenderer},
		{code: form.FieldTypeDate, factory: NewDateRenderer},
		{code: form.FieldTypeSelect, factory: NewSelectRenderer},
	}
}

// inputRenderer draws single-line inputs (text, number, date).
type inputRenderer struct {
	base
	fallback  string
	charLimit int
}

func NewTextRenderer(def *form.Definition, st Style) Renderer {
	return &inputRenderer{base: newBase(def, st)}
}

func NewNumberRenderer(def *form.Definition, st Style) Renderer {
	return &inputRenderer{base: newBase(def, st), fallback: "0", charLimit: 20}
}

func NewDateRenderer(def *form.Definition, st Style) Renderer {
	return &inputRenderer{base: newBase(def, st), fallback: "YYYY-MM-DD", charLimit: 10}
}

func (r *inputRenderer) RenderWidget() widget.Widget {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = r.placeholder(r.fallback)
	in.Width = r.style.InputWidth
	in.CharLimit = r.charLimit
	return r.frame(r.style.Input.Render(in.View()))
}

type textAreaRenderer struct {
	base
}

func NewTextAreaRenderer(def *form.Definition, st Style) Renderer {
	return &textAreaRenderer{base: newBase(def, st)}
}

func (r *textAreaRenderer) RenderWidget() widget.Widget {
	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.Placeholder = r.placeholder("")
	ta.SetWidth(r.style.InputWidth)
	ta.SetHeight(3)
	return r.frame(ta.View())
}

type checkBoxRenderer struct {
	base
}

func NewCheckBoxRenderer(def *form.Definition, st Style) Renderer {
	return &checkBoxRenderer{base: newBase(def, st)}
}

func (r *checkBoxRenderer) RenderWidget() widget.Widget {
	// The box sits on the label line, so no separate label row.
	line := "[ ] " + r.labelView()
	if r.field != nil && r.field.ReadOnly {
		line = r.style.Muted.Render("[-] ") + r.labelView()
	}
	return widget.NewText(line, r.style.Frame)
}

type selectRenderer struct {
	base
}

func NewSelectRenderer(def *form.Definition, st Style) Renderer {
	return &selectRenderer{base: newBase(def, st)}
}

func (r *selectRenderer) RenderWidget() widget.Widget {
	var opts []form.Option
	if r.field != nil {
		opts = r.field.Options
	}
	if len(opts) == 0 {
		return r.frame(r.style.Muted.Render("▾ " + r.placeholder("no options")))
	}

	lines := make([]string, 0, len(opts)+1)
	lines = append(lines, r.style.Input.Render("▾ "+r.placeholder("choose…")))
	for _, o := range opts {
		text := o.Text
		if text == "" {
			text = o.Value
		}
		text = grapheme.Truncate(grapheme.SingleLine(text), r.style.InputWidth, "…")
		lines = append(lines, r.style.Muted.Render("  "+text))
	}
	return r.frame(strings.Join(lines, "\n"))
}
