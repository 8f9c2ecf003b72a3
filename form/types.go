package form

// FieldType is the type code of a field definition.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeTextArea FieldType = "textarea"
	FieldTypeNumber   FieldType = "number"
	FieldTypeCheckBox FieldType = "checkbox"
	FieldTypeDate     FieldType = "date"
	FieldTypeSelect   FieldType = "select"
)

// AllFieldTypes returns the built-in field types.
func AllFieldTypes() []FieldType {
	return []FieldType{
		FieldTypeText,
		FieldTypeTextArea,
		FieldTypeNumber,
		FieldTypeCheckBox,
		FieldTypeDate,
		FieldTypeSelect,
	}
}

// IsValid reports whether t is one of the built-in field types.
func (t FieldType) IsValid() bool {
	switch t {
	case FieldTypeText,
		FieldTypeTextArea,
		FieldTypeNumber,
		FieldTypeCheckBox,
		FieldTypeDate,
		FieldTypeSelect:
		return true
	default:
		return false
	}
}

func (t FieldType) String() string { return string(t) }

// Path is an opaque locator of the form a field belongs to.
type Path string

// Identity addresses one field slot within a form.
type Identity struct {
	FormID    string
	FieldName string
}

// Matches reports exact equality of both parts.
func (id Identity) Matches(other Identity) bool {
	return id.FormID == other.FormID && id.FieldName == other.FieldName
}

// Option is a selectable value of a select field.
type Option struct {
	Value string
	Text  string
}

// Definition describes one data field on a form.
type Definition struct {
	Name              string
	Code              FieldType
	BindingExpression string

	Label       string
	Placeholder string
	Required    bool
	ReadOnly    bool

	// Only used by select fields.
	Options []Option
}

// Clone returns a deep copy of d. Clone of nil is nil.
func (d *Definition) Clone() *Definition {
	if d == nil {
		return nil
	}
	out := *d
	if len(d.Options) > 0 {
		out.Options = append([]Option(nil), d.Options...)
	} else {
		out.Options = nil
	}
	return &out
}

// DisplayLabel returns Label, falling back to Name.
func (d *Definition) DisplayLabel() string {
	if d == nil {
		return ""
	}
	if d.Label != "" {
		return d.Label
	}
	return d.Name
}
