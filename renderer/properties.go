package renderer

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/formslot/form"
)

// PropertyKeyMap defines the property editor key bindings.
type PropertyKeyMap struct {
	Next, Prev  key.Binding
	Apply       key.Binding
	Left, Right key.Binding
	Toggle      key.Binding
}

func DefaultPropertyKeyMap() PropertyKeyMap {
	return PropertyKeyMap{
		Next:   key.NewBinding(key.WithKeys("down", "tab"), key.WithHelp("↓/tab", "next property")),
		Prev:   key.NewBinding(key.WithKeys("up", "shift+tab"), key.WithHelp("↑/shift+tab", "previous property")),
		Apply:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Left:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "previous choice")),
		Right:  key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next choice")),
		Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
	}
}

// PropertyForm is the property editor fragment shared by built-in renderers.
// Edits are applied through the Host, or directly on the bound definition
// for presentation-only properties (label, placeholder, required).
type PropertyForm struct {
	host  Host
	style Style
	keys  PropertyKeyMap

	rows  []propertyRow
	focus int
}

type propertyRow interface {
	name() string
	view(st Style) string
	update(msg tea.Msg, keys PropertyKeyMap) tea.Cmd
	// apply runs on the Apply key.
	apply()
	focus() tea.Cmd
	// leave runs when focus moves away.
	leave()
}

// NewPropertyForm builds the editor from the host's current state.
func NewPropertyForm(host Host, st Style) *PropertyForm {
	f := &PropertyForm{host: host, style: st, keys: DefaultPropertyKeyMap()}
	def := host.Field()

	f.rows = []propertyRow{
		newInputRow("Name", host.Identity().FieldName, st.InputWidth, func(v string) {
			v = strings.TrimSpace(v)
			if v == "" || v == host.Identity().FieldName {
				return
			}
			host.SetFieldName(v)
		}),
	}
	if def == nil {
		return f
	}

	f.rows = append(f.rows,
		newInputRow("Label", def.Label, st.InputWidth, func(v string) {
			if d := host.Field(); d != nil {
				d.Label = v
			}
		}),
		newInputRow("Placeholder", def.Placeholder, st.InputWidth, func(v string) {
			if d := host.Field(); d != nil {
				d.Placeholder = v
			}
		}),
		&toggleRow{label: "Required", get: func() bool {
			d := host.Field()
			return d != nil && d.Required
		}, set: func(v bool) {
			if d := host.Field(); d != nil {
				d.Required = v
			}
		}},
		newChoiceRow("Binding", def.BindingExpression, host.CompatibleFields(), func(v string) {
			host.SwitchToField(v)
		}),
		newChoiceRow("Type", def.Code.String(), typeStrings(host.CompatibleFieldTypes()), func(v string) {
			host.SwitchToFieldType(form.FieldType(v))
		}),
	)
	return f
}

func (f *PropertyForm) SetKeyMap(km PropertyKeyMap) { f.keys = km }

// Focused returns the name of the focused property.
func (f *PropertyForm) Focused() string {
	if len(f.rows) == 0 {
		return ""
	}
	return f.rows[f.focus].name()
}

// Rows returns the property names in display order.
func (f *PropertyForm) Rows() []string {
	out := make([]string, len(f.rows))
	for i, r := range f.rows {
		out[i] = r.name()
	}
	return out
}

func (f *PropertyForm) Focus() tea.Cmd {
	if len(f.rows) == 0 {
		return nil
	}
	return f.rows[f.focus].focus()
}

func (f *PropertyForm) Update(msg tea.Msg) tea.Cmd {
	if len(f.rows) == 0 {
		return nil
	}
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, f.keys.Next):
			return f.move(1)
		case key.Matches(km, f.keys.Prev):
			return f.move(-1)
		case key.Matches(km, f.keys.Apply):
			f.rows[f.focus].apply()
			return nil
		}
	}
	return f.rows[f.focus].update(msg, f.keys)
}

func (f *PropertyForm) move(delta int) tea.Cmd {
	f.rows[f.focus].leave()
	f.focus = (f.focus + delta + len(f.rows)) % len(f.rows)
	return f.rows[f.focus].focus()
}

func (f *PropertyForm) View() string {
	lines := make([]string, len(f.rows))
	for i, r := range f.rows {
		marker := "  "
		keyStyle := f.style.PropKey
		if i == f.focus {
			marker = f.style.PropFocused.Render("> ")
			keyStyle = keyStyle.Inherit(f.style.PropFocused)
		}
		lines[i] = marker + keyStyle.Render(r.name()) + r.view(f.style)
	}
	return strings.Join(lines, "\n")
}

type inputRow struct {
	label  string
	in     textinput.Model
	commit func(string)
	last   string
}

func newInputRow(label, value string, width int, commit func(string)) *inputRow {
	in := textinput.New()
	in.Prompt = ""
	in.Width = width
	in.SetValue(value)
	return &inputRow{label: label, in: in, commit: commit, last: value}
}

func (r *inputRow) name() string { return r.label }

func (r *inputRow) view(Style) string { return r.in.View() }

func (r *inputRow) update(msg tea.Msg, _ PropertyKeyMap) tea.Cmd {
	var cmd tea.Cmd
	r.in, cmd = r.in.Update(msg)
	return cmd
}

func (r *inputRow) apply() {
	v := r.in.Value()
	if v == r.last {
		return
	}
	r.last = v
	r.commit(v)
}

func (r *inputRow) focus() tea.Cmd { return r.in.Focus() }

func (r *inputRow) leave() {
	r.apply()
	r.in.Blur()
}

type toggleRow struct {
	label string
	get   func() bool
	set   func(bool)
}

func (r *toggleRow) name() string { return r.label }

func (r *toggleRow) view(Style) string {
	if r.get() {
		return "[x]"
	}
	return "[ ]"
}

func (r *toggleRow) update(msg tea.Msg, keys PropertyKeyMap) tea.Cmd {
	if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, keys.Toggle) {
		r.set(!r.get())
	}
	return nil
}

func (r *toggleRow) apply() { r.set(!r.get()) }

func (r *toggleRow) focus() tea.Cmd { return nil }

func (r *toggleRow) leave() {}

// choiceRow cycles through options; apply hands the chosen one to commit.
type choiceRow struct {
	label   string
	options []string
	idx     int
	current string
	commit  func(string)
}

func newChoiceRow(label, current string, options []string, commit func(string)) *choiceRow {
	r := &choiceRow{label: label, current: current, commit: commit}
	r.options = append(r.options, options...)
	r.idx = -1
	for i, o := range r.options {
		if o == current {
			r.idx = i
			break
		}
	}
	if r.idx < 0 {
		r.options = append([]string{current}, r.options...)
		r.idx = 0
	}
	return r
}

func (r *choiceRow) name() string { return r.label }

func (r *choiceRow) selected() string { return r.options[r.idx] }

func (r *choiceRow) view(st Style) string {
	v := r.selected()
	if v == "" {
		v = "–"
	}
	if len(r.options) < 2 {
		return v
	}
	return st.PropChoice.Render("‹ " + v + " ›")
}

func (r *choiceRow) update(msg tea.Msg, keys PropertyKeyMap) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok || len(r.options) < 2 {
		return nil
	}
	switch {
	case key.Matches(km, keys.Left):
		r.idx = (r.idx - 1 + len(r.options)) % len(r.options)
	case key.Matches(km, keys.Right):
		r.idx = (r.idx + 1) % len(r.options)
	}
	return nil
}

func (r *choiceRow) apply() {
	v := r.selected()
	if v == r.current || v == "" {
		return
	}
	r.current = v
	r.commit(v)
}

func (r *choiceRow) focus() tea.Cmd { return nil }

// leave keeps an unapplied selection pending.
func (r *choiceRow) leave() {}

func typeStrings(codes []form.FieldType) []string {
	if len(codes) == 0 {
		return nil
	}
	out := make([]string, len(codes))
	for i, c := range codes {
		out[i] = c.String()
	}
	return out
}
