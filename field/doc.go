// Package field implements the editable lifecycle of one field slot placed
// on a form canvas.
//
// A Component owns the slot's identity (form id + field name), the field
// definition it is bound to, the renderer drawing it and the properties
// modal. When the definition is not known yet the component publishes a
// FormContextRequest and keeps rendering an empty container until the
// matching FormContextResponse is delivered.
//
// Components are driven from a single goroutine, normally a Bubble Tea
// Update loop; none of the methods are safe for concurrent use.
package field
