// Package catalog provides an in-memory editor context for one form.
//
// A Catalog knows the form's fields and the data model they can be bound
// to. It answers FormContextRequests through a Responder and keeps its field
// list in sync with drop/remove notifications published by the canvas.
package catalog
