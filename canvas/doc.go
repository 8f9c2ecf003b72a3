// Package canvas is a Bubble Tea host for field components.
//
// A Canvas keeps one settings bag per slot, drops and removes components,
// overlays the open properties dialog and pumps the shared event bus.
package canvas
