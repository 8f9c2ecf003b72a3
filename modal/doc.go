// Package modal implements the field properties dialog.
//
// A Modal starts visible and is hidden exactly once, either through its
// dismiss command or by the host calling Hide. Hide handlers are one-shot.
// Renderers populate the dialog by installing a Fragment.
package modal
