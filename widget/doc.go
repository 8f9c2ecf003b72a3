// Package widget provides the minimal renderable unit shared by renderers,
// field components and hosts.
package widget
