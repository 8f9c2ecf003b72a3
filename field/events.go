package field

import "github.com/iw2rmb/formslot/form"

// ChangeKind identifies what changed in a component.
type ChangeKind uint8

const (
	ChangeInit ChangeKind = iota
	ChangeResolved
	ChangeBinding
	ChangeType
	ChangeRenamed
	ChangeConfigured
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeInit:
		return "init"
	case ChangeResolved:
		return "resolved"
	case ChangeBinding:
		return "binding"
	case ChangeType:
		return "type"
	case ChangeRenamed:
		return "renamed"
	case ChangeConfigured:
		return "configured"
	default:
		return "unknown"
	}
}

type ChangeEvent struct {
	Kind     ChangeKind
	Identity form.Identity
	Code     form.FieldType

	// HasRenderer is false while the component is degraded.
	HasRenderer bool
}

func (c *Component) notify(kind ChangeKind) {
	if c.cfg.OnChange == nil {
		return
	}
	ev := ChangeEvent{
		Kind:        kind,
		Identity:    c.Identity(),
		HasRenderer: c.state.renderer != nil,
	}
	if c.state.field != nil {
		ev.Code = c.state.field.Code
	}
	c.cfg.OnChange(ev)
}
