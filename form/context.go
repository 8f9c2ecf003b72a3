package form

// EditorContext is the authoritative source of field definitions for one form.
//
// Lookups that cannot be satisfied return (nil, false); callers treat that as
// a no-op rather than an error.
type EditorContext interface {
	FormField(name string) (*Definition, bool)
	Path() Path

	// SwitchToField returns the definition that should occupy current's slot
	// once it is rebound to bindingExpression.
	SwitchToField(current *Definition, bindingExpression string) (*Definition, bool)
	// SwitchToFieldType converts current to the requested type.
	SwitchToFieldType(current *Definition, code FieldType) (*Definition, bool)

	CompatibleFields(current *Definition) []string
	CompatibleFieldTypes(current *Definition) []FieldType
}

// FieldRenamer is implemented by editor contexts that allow renaming a field
// in place.
type FieldRenamer interface {
	RenameField(current *Definition, name string) (*Definition, bool)
}
