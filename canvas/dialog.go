package canvas

import "github.com/iw2rmb/formslot/modal"

// dialog is the host side of one open properties dialog.
type dialog struct {
	slot     *slot
	modal    *modal.Modal
	finished bool
}

func (d *dialog) Properties() map[string]string { return d.slot.settings }

func (d *dialog) SetProperty(key, value string) { d.slot.settings[key] = value }

func (d *dialog) ConfigurationFinished() { d.finished = true }
