package field_test

import (
	"maps"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/formslot/field"
	"github.com/iw2rmb/formslot/form"
	"github.com/iw2rmb/formslot/renderer"
)

func TestModal_RoundTripUnchanged(t *testing.T) {
	h := newHarness(t, nil)
	h.resolve(t, "F", "name")
	initial := map[string]string{form.SettingFormID: "F", form.SettingFieldName: "name"}
	bag := newSettingsBag(maps.Clone(initial))

	m := h.comp.ConfigurationModal(bag)
	if m == nil || !h.comp.ModalOpen() || h.comp.Modal() != m {
		t.Fatalf("modal not open")
	}
	if _, ok := m.Properties().(*renderer.PropertyForm); !ok {
		t.Fatalf("fragment: got %T", m.Properties())
	}

	m.Dismiss()

	if !maps.Equal(bag.props, initial) {
		t.Fatalf("settings changed: %v", bag.props)
	}
	if bag.finished != 1 {
		t.Fatalf("finished: got %d, want 1", bag.finished)
	}
	if h.comp.ModalOpen() || h.comp.Modal() != nil {
		t.Fatalf("modal still referenced after hide")
	}

	// A second hide is a no-op.
	m.Hide()
	if bag.finished != 1 {
		t.Fatalf("hide handler ran twice")
	}
}

func TestModal_RoundTripWritesEditedName(t *testing.T) {
	h := newHarness(t, nil)
	h.resolve(t, "F", "name")
	bag := newSettingsBag(nil)

	h.comp.ConfigurationModal(bag)
	// The name row has focus: type, leave the row, close the dialog.
	h.comp.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("_full")})
	h.comp.Update(tea.KeyMsg{Type: tea.KeyTab})
	h.comp.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if got := bag.props[form.SettingFieldName]; got != "name_full" {
		t.Fatalf("field name setting: got %q, want %q", got, "name_full")
	}
	if h.comp.ModalOpen() {
		t.Fatalf("modal still open")
	}
	if _, ok := h.cat.FormField("name_full"); !ok {
		t.Fatalf("catalog not renamed")
	}
	if last := h.changes[len(h.changes)-1]; last != field.ChangeConfigured {
		t.Fatalf("last change: got %v", last)
	}
}

func TestModal_ReentryReturnsOpenModal(t *testing.T) {
	h := newHarness(t, nil)
	h.resolve(t, "F", "name")
	bag := newSettingsBag(nil)

	first := h.comp.ConfigurationModal(bag)
	second := h.comp.ConfigurationModal(bag)
	if first != second {
		t.Fatalf("a second modal was created while one is open")
	}
	first.Hide()
	if bag.finished != 1 {
		t.Fatalf("finished: got %d, want 1", bag.finished)
	}

	third := h.comp.ConfigurationModal(bag)
	if third == first {
		t.Fatalf("closed modal reused")
	}
}

func TestModal_ResolvesLazilyAndReloads(t *testing.T) {
	h := newHarness(t, nil)
	bag := newSettingsBag(map[string]string{form.SettingFormID: "F", form.SettingFieldName: "field1"})

	m := h.comp.ConfigurationModal(bag)
	if m.Properties() != nil {
		t.Fatalf("fragment loaded before resolution")
	}
	if !h.comp.Pending() {
		t.Fatalf("no request issued")
	}

	h.bus.Flush()

	if h.comp.Field() == nil {
		t.Fatalf("field not resolved")
	}
	if m.Loads() != 1 {
		t.Fatalf("fragment loads: got %d, want 1", m.Loads())
	}
	if h.comp.Content().Len() != 1 {
		t.Fatalf("content not rendered on resolution")
	}
}

func TestModal_SwitchReloadsFragment(t *testing.T) {
	h := newHarness(t, nil)
	h.resolve(t, "F", "name")
	m := h.comp.ConfigurationModal(newSettingsBag(nil))
	loads := m.Loads()

	h.comp.SwitchToField("person.nickname")
	if m.Loads() != loads+1 {
		t.Fatalf("binding switch loads: got %d, want %d", m.Loads(), loads+1)
	}
	h.comp.SwitchToFieldType(form.FieldTypeText)
	if m.Loads() != loads+1 {
		t.Fatalf("no-op type switch reloaded the fragment")
	}
}

func TestModal_CloseDiscardsWithoutFinishing(t *testing.T) {
	h := newHarness(t, nil)
	h.resolve(t, "F", "name")
	bag := newSettingsBag(nil)
	m := h.comp.ConfigurationModal(bag)

	h.comp.Close()
	m.Hide()

	if bag.finished != 0 {
		t.Fatalf("closed component finished configuration")
	}
	if h.comp.ModalOpen() {
		t.Fatalf("modal still open after Close")
	}
}

func TestUpdate_WithoutModal(t *testing.T) {
	h := newHarness(t, nil)
	if cmd := h.comp.Update(tea.KeyMsg{Type: tea.KeyEsc}); cmd != nil {
		t.Fatalf("unexpected command")
	}
}
