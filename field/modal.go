package field

import (
	"github.com/iw2rmb/formslot/form"
	"github.com/iw2rmb/formslot/modal"
)

// ModalContext is the host side of one configuration session.
type ModalContext interface {
	// Properties is the host's settings bag for the slot.
	Properties() map[string]string
	SetProperty(key, value string)
	ConfigurationFinished()
}

// modalState is either closed (handle == nil) or open.
type modalState struct {
	handle  *modal.Modal
	onClose func()
}

func (s *modalState) isOpen() bool { return s.handle != nil }

// open moves to the open state. It refuses when a modal is already open.
func (s *modalState) open(m *modal.Modal, onClose func()) bool {
	if s.isOpen() || m == nil {
		return false
	}
	s.handle = m
	s.onClose = onClose
	m.AddHideHandler(func() { s.close(m) })
	return true
}

// close runs the completion action and returns to the closed state.
// Hide callbacks of a modal that is no longer current are ignored.
func (s *modalState) close(m *modal.Modal) {
	if s.handle != m {
		return
	}
	done := s.onClose
	s.onClose = nil
	if done != nil {
		done()
	}
	s.handle = nil
}

// discard returns to closed without running the completion action.
func (s *modalState) discard() {
	s.handle = nil
	s.onClose = nil
}

// ModalOpen reports whether the properties modal is open.
func (c *Component) ModalOpen() bool { return c.modal.isOpen() }

// Modal returns the open properties modal or nil.
func (c *Component) Modal() *modal.Modal { return c.modal.handle }

// ConfigurationModal opens the properties dialog. While a dialog is open the
// same handle is returned again.
func (c *Component) ConfigurationModal(ctx ModalContext) *modal.Modal {
	if c.modal.isOpen() {
		c.log.Debug("configuration modal already open", "form_id", c.formID, "field", c.fieldName)
		return c.modal.handle
	}

	// An unresolved slot takes its identity from the host's bag first.
	if c.state.field == nil {
		c.requestField(ctx.Properties())
	}
	ctx.SetProperty(form.SettingFormID, c.formID)
	ctx.SetProperty(form.SettingFieldName, c.fieldName)

	var m *modal.Modal
	m = modal.New(c.cfg.ModalTitle, func() { m.Hide() })
	c.modal.open(m, func() {
		ctx.SetProperty(form.SettingFieldName, c.fieldName)
		ctx.ConfigurationFinished()
		if c.state.renderer != nil {
			c.renderContent()
		}
		c.notify(ChangeConfigured)
	})

	if c.state.renderer != nil {
		c.state.renderer.LoadFieldProperties(m)
	}
	return m
}
