// Package form implements the pure data model shared by field components,
// renderers and editor contexts.
//
// A field slot on a form is addressed by its Identity (form id + field name).
// Definitions are owned by an EditorContext; components only hold references
// handed out by it.
package form
