package field

import (
	"github.com/iw2rmb/formslot/event"
	"github.com/iw2rmb/formslot/form"
)

// SwitchToField rebinds the slot to the field addressed by
// bindingExpression. It reports whether anything changed.
//
// Observers see the destination dropped before the old field is removed.
func (c *Component) SwitchToField(bindingExpression string) bool {
	current := c.state.field
	if current == nil || c.editorCtx == nil {
		return false
	}
	if current.BindingExpression == bindingExpression {
		return false
	}
	dest, ok := c.editorCtx.SwitchToField(current, bindingExpression)
	if !ok || dest == nil {
		c.log.Debug("no field for binding", "form_id", c.formID, "field", c.fieldName, "binding", bindingExpression)
		return false
	}

	c.cfg.Dropped.Publish(event.FieldDropped{FormID: c.formID, FieldName: dest.Name})
	c.cfg.Removed.Publish(event.FieldRemoved{FormID: c.formID, FieldName: current.Name})

	c.fieldName = dest.Name
	c.bind(dest, keepRenderer)
	c.renderContent()
	c.reloadModal()
	c.notify(ChangeBinding)
	return true
}

// SwitchToFieldType converts the bound field to code in place and resolves
// the renderer again. It reports whether anything changed.
func (c *Component) SwitchToFieldType(code form.FieldType) bool {
	current := c.state.field
	if current == nil || c.editorCtx == nil {
		return false
	}
	if current.Code == code {
		return false
	}
	converted, ok := c.editorCtx.SwitchToFieldType(current, code)
	if !ok || converted == nil {
		c.log.Debug("field type not compatible", "form_id", c.formID, "field", c.fieldName, "code", code)
		return false
	}

	c.bind(converted, resolveRenderer)
	if c.state.renderer != nil {
		c.renderContent()
		c.reloadModal()
	}
	c.notify(ChangeType)
	return true
}

func (c *Component) reloadModal() {
	if c.modal.isOpen() && c.state.renderer != nil {
		c.state.renderer.LoadFieldProperties(c.modal.handle)
	}
}
