// Package renderer turns field definitions into widgets.
//
// A Registry maps field type codes to renderer factories. A Renderer is
// bound to exactly one definition at a time: it is created for a definition,
// initialized with its Host, and rebound in place with SetField. Renderers
// also provide the property editor fragment shown in the field's modal.
package renderer
