package event

import "github.com/iw2rmb/formslot/form"

// FieldDropped is published when a field becomes bound to a slot.
type FieldDropped struct {
	FormID    string
	FieldName string
}

// FieldRemoved is published when a field vacates a slot.
type FieldRemoved struct {
	FormID    string
	FieldName string
}

// FormContextRequest asks the editor context owning FormID to resolve
// FieldName. Token identifies the requesting component instance.
type FormContextRequest struct {
	FormID    string
	FieldName string
	Token     string
}

func (r FormContextRequest) Identity() form.Identity {
	return form.Identity{FormID: r.FormID, FieldName: r.FieldName}
}

// FormContextResponse answers a FormContextRequest. It is delivered to every
// listener; listeners filter by identity and, when set, by Token.
type FormContextResponse struct {
	FormID    string
	FieldName string
	Token     string
	Context   form.EditorContext
}

func (r FormContextResponse) Identity() form.Identity {
	return form.Identity{FormID: r.FormID, FieldName: r.FieldName}
}
