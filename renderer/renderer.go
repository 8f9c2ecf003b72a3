package renderer

import (
	"github.com/iw2rmb/formslot/form"
	"github.com/iw2rmb/formslot/modal"
	"github.com/iw2rmb/formslot/widget"
)

// Host is the field component a renderer works for.
type Host interface {
	Identity() form.Identity
	Field() *form.Definition

	// SetFieldName renames the slot's field.
	SetFieldName(name string)
	SwitchToField(bindingExpression string) bool
	SwitchToFieldType(code form.FieldType) bool

	CompatibleFields() []string
	CompatibleFieldTypes() []form.FieldType
}

// Renderer produces widgets for one field definition.
type Renderer interface {
	Init(host Host, path form.Path)
	// SetField rebinds the renderer without reconstructing it.
	SetField(def *form.Definition)
	Field() *form.Definition

	// RenderWidget returns a fresh display widget on every call.
	RenderWidget() widget.Widget
	DragWidget() widget.Widget
	// LoadFieldProperties installs the property editor into m.
	LoadFieldProperties(m *modal.Modal)
}

// Lookup resolves the renderer capable of displaying def.
type Lookup interface {
	RendererFor(def *form.Definition) (Renderer, bool)
}

// Factory creates a renderer bound to def.
type Factory func(def *form.Definition, st Style) Renderer
