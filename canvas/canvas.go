package canvas

import (
	"log/slog"
	"maps"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/iw2rmb/formslot/field"
	"github.com/iw2rmb/formslot/form"
	"github.com/iw2rmb/formslot/modal"
)

// Canvas hosts an ordered list of field slots. It is a Bubble Tea
// sub-model: the owner forwards messages to Update and renders View.
type Canvas struct {
	cfg Config
	log *slog.Logger

	slots    []*slot
	selected int
	stamps   *field.Stamps
	dialog   *dialog

	viewport viewport.Model
	content  string
}

// slot is one placed component and its persisted settings.
type slot struct {
	comp     *field.Component
	settings map[string]string
}

func New(cfg Config) *Canvas {
	cfg = normalizeConfig(cfg)
	c := &Canvas{
		cfg:      cfg,
		log:      cfg.Logger,
		stamps:   field.NewStamps(),
		viewport: viewport.New(0, 0),
	}
	c.refresh()
	return c
}

func (c *Canvas) Len() int { return len(c.slots) }

// Component returns the component in slot i.
func (c *Canvas) Component(i int) (*field.Component, bool) {
	if i < 0 || i >= len(c.slots) {
		return nil, false
	}
	return c.slots[i].comp, true
}

func (c *Canvas) Selected() int { return c.selected }

// Select moves the selection to slot i, clamped to the slot range.
func (c *Canvas) Select(i int) {
	c.selected = clamp(i, 0, len(c.slots)-1)
	c.refresh()
}

// Drop places a new component for fieldName at the end of the canvas and
// announces it. Unbound placeholders receive a unique name.
func (c *Canvas) Drop(fieldName string) int {
	s := c.place(map[string]string{
		form.SettingFormID:    c.cfg.FormID,
		form.SettingFieldName: fieldName,
	})
	s.comp.OnDrop()
	s.comp.ShowWidget(field.RenderingContext{Properties: s.settings})
	c.selected = len(c.slots) - 1
	c.refresh()
	return c.selected
}

// Restore recreates components from persisted settings bags, replacing the
// current slots.
func (c *Canvas) Restore(settings []map[string]string) {
	for _, s := range c.slots {
		s.comp.Close()
	}
	c.slots = nil
	c.dialog = nil
	for _, bag := range settings {
		s := c.place(maps.Clone(bag))
		s.comp.ShowWidget(field.RenderingContext{Properties: s.settings})
	}
	c.selected = 0
	c.refresh()
}

func (c *Canvas) place(bag map[string]string) *slot {
	cfg := field.BusConfig(c.cfg.Bus, c.cfg.Renderers)
	cfg.Clock = c.cfg.Clock
	cfg.Stamps = c.stamps
	cfg.Logger = c.log
	cfg.OnChange = func(ev field.ChangeEvent) {
		c.log.Debug("field changed",
			"kind", ev.Kind.String(), "form_id", ev.Identity.FormID, "field", ev.Identity.FieldName,
			"code", ev.Code, "renderer", ev.HasRenderer)
	}
	comp := field.New(cfg)
	for _, k := range comp.SettingsKeys() {
		if v, ok := bag[k]; ok {
			comp.SetSetting(k, v)
		}
	}
	s := &slot{comp: comp, settings: bag}
	s.sync()
	c.slots = append(c.slots, s)
	return s
}

// Remove vacates slot i. It reports whether the slot existed.
func (c *Canvas) Remove(i int) bool {
	if i < 0 || i >= len(c.slots) {
		return false
	}
	s := c.slots[i]
	if c.dialog != nil && c.dialog.slot == s {
		c.dialog = nil
	}
	s.comp.OnRemove()
	c.slots = append(c.slots[:i], c.slots[i+1:]...)
	c.selected = clamp(c.selected, 0, len(c.slots)-1)
	c.refresh()
	return true
}

// Settings exports the settings bag of every slot in order.
func (c *Canvas) Settings() []map[string]string {
	out := make([]map[string]string, len(c.slots))
	for i, s := range c.slots {
		s.sync()
		out[i] = maps.Clone(s.settings)
	}
	return out
}

// OpenConfiguration opens the properties dialog of slot i. Only one dialog
// is open at a time; asking again returns the open one.
func (c *Canvas) OpenConfiguration(i int) (*modal.Modal, bool) {
	if c.dialog != nil {
		return c.dialog.modal, true
	}
	if i < 0 || i >= len(c.slots) {
		return nil, false
	}
	d := &dialog{slot: c.slots[i]}
	m := d.slot.comp.ConfigurationModal(d)
	if m == nil {
		return nil, false
	}
	m.SetWidth(c.cfg.DialogWidth)
	d.modal = m
	c.dialog = d
	return m, true
}

// DialogOpen reports whether a properties dialog is shown.
func (c *Canvas) DialogOpen() bool { return c.dialog != nil }

// sync copies the component's identity into the settings bag.
func (s *slot) sync() {
	for _, k := range s.comp.SettingsKeys() {
		if v, ok := s.comp.Setting(k); ok {
			s.settings[k] = v
		}
	}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
