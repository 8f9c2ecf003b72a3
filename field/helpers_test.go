package field_test

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/formslot/event"
	"github.com/iw2rmb/formslot/field"
	"github.com/iw2rmb/formslot/form"
	"github.com/iw2rmb/formslot/form/catalog"
	"github.com/iw2rmb/formslot/renderer"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// harness wires one component to a bus answered by a catalog.
type harness struct {
	bus     *event.Bus
	cat     *catalog.Catalog
	comp    *field.Component
	events  []string
	changes []field.ChangeKind
}

func newCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c := catalog.New("F", "forms/F")
	props := []catalog.Property{
		{Expression: "person.name", Label: "Name", Types: []form.FieldType{form.FieldTypeText, form.FieldTypeTextArea}},
		{Expression: "person.nickname", Label: "Nickname", Types: []form.FieldType{form.FieldTypeText}},
	}
	for _, p := range props {
		if err := c.AddProperty(p); err != nil {
			t.Fatalf("add property: %v", err)
		}
	}
	fields := []*form.Definition{
		{Name: "name", Code: form.FieldTypeText, BindingExpression: "person.name", Label: "Name"},
		{Name: "field1", Code: form.FieldTypeText, Label: "Field one"},
		{Name: "legacy", Code: "color", Label: "Legacy"},
	}
	for _, def := range fields {
		if err := c.AddField(def); err != nil {
			t.Fatalf("add field: %v", err)
		}
	}
	return c
}

func newHarness(t *testing.T, cfg func(*field.Config)) *harness {
	t.Helper()
	h := &harness{bus: event.NewBus(), cat: newCatalog(t)}

	r := catalog.NewResponder(h.bus.Responses, nil)
	r.Add(h.cat)
	t.Cleanup(r.Attach(h.bus))

	h.bus.Dropped.Subscribe(func(ev event.FieldDropped) { h.events = append(h.events, "dropped:"+ev.FieldName) })
	h.bus.Removed.Subscribe(func(ev event.FieldRemoved) { h.events = append(h.events, "removed:"+ev.FieldName) })

	c := field.BusConfig(h.bus, renderer.NewDefaultRegistry())
	c.OnChange = func(ev field.ChangeEvent) { h.changes = append(h.changes, ev.Kind) }
	if cfg != nil {
		cfg(&c)
	}
	h.comp = field.New(c)
	return h
}

// resolve sets the identity and runs one resolution round trip.
func (h *harness) resolve(t *testing.T, formID, name string) {
	t.Helper()
	h.comp.SetSetting(form.SettingFormID, formID)
	h.comp.SetSetting(form.SettingFieldName, name)
	h.comp.ShowWidget(field.RenderingContext{})
	h.bus.Flush()
	h.events = nil
	h.changes = nil
}

type settingsBag struct {
	props    map[string]string
	finished int
}

func newSettingsBag(props map[string]string) *settingsBag {
	if props == nil {
		props = map[string]string{}
	}
	return &settingsBag{props: props}
}

func (b *settingsBag) Properties() map[string]string { return b.props }

func (b *settingsBag) SetProperty(key, value string) { b.props[key] = value }

func (b *settingsBag) ConfigurationFinished() { b.finished++ }
