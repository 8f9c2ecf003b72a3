package catalog

import (
	"slices"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/iw2rmb/formslot/form"
)

var (
	ErrInvalidField = goerr.New("invalid field")
	ErrDuplicate    = goerr.New("duplicate entry")
	ErrNotFound     = goerr.New("not found")
)

// Property is one bindable property of the form's data model.
type Property struct {
	Expression string
	Label      string
	// Types allowed for fields bound to this property; the first is the
	// default when a new field is created for it.
	Types []form.FieldType
}

// Catalog is the editor context of one form. It is not safe for concurrent
// use; it runs on the same loop as the components it serves.
type Catalog struct {
	formID string
	path   form.Path

	fields map[string]*form.Definition
	order  []string
	model  []Property
}

func New(formID string, path form.Path) *Catalog {
	return &Catalog{
		formID: formID,
		path:   path,
		fields: make(map[string]*form.Definition),
	}
}

func (c *Catalog) FormID() string { return c.formID }

func (c *Catalog) Path() form.Path { return c.path }

// AddProperty extends the data model.
func (c *Catalog) AddProperty(p Property) error {
	if p.Expression == "" {
		return goerr.Wrap(ErrInvalidField, "property expression is required")
	}
	if len(p.Types) == 0 {
		return goerr.Wrap(ErrInvalidField, "property needs at least one type", goerr.V("expression", p.Expression))
	}
	if _, ok := c.property(p.Expression); ok {
		return goerr.Wrap(ErrDuplicate, "duplicate property", goerr.V("expression", p.Expression))
	}
	p.Types = slices.Clone(p.Types)
	c.model = append(c.model, p)
	return nil
}

// AddField places def on the form. The catalog keeps def; callers must not
// reuse it.
func (c *Catalog) AddField(def *form.Definition) error {
	if def == nil || def.Name == "" {
		return goerr.Wrap(ErrInvalidField, "field name is required")
	}
	if _, exists := c.fields[def.Name]; exists {
		return goerr.Wrap(ErrDuplicate, "duplicate field", goerr.V("name", def.Name))
	}
	if def.BindingExpression != "" {
		p, ok := c.property(def.BindingExpression)
		if !ok {
			return goerr.Wrap(ErrNotFound, "unknown binding", goerr.V("name", def.Name), goerr.V("binding", def.BindingExpression))
		}
		if !slices.Contains(p.Types, def.Code) {
			return goerr.Wrap(ErrInvalidField, "type not allowed for binding",
				goerr.V("name", def.Name), goerr.V("binding", def.BindingExpression), goerr.V("type", def.Code))
		}
		if owner, bound := c.boundBy(def.BindingExpression); bound {
			return goerr.Wrap(ErrDuplicate, "binding already used", goerr.V("binding", def.BindingExpression), goerr.V("owner", owner.Name))
		}
	}
	c.put(def)
	return nil
}

// RemoveField drops the named field. It reports whether it existed.
func (c *Catalog) RemoveField(name string) bool {
	if _, ok := c.fields[name]; !ok {
		return false
	}
	delete(c.fields, name)
	c.order = slices.DeleteFunc(c.order, func(n string) bool { return n == name })
	return true
}

// Fields returns the form's fields in placement order.
func (c *Catalog) Fields() []*form.Definition {
	out := make([]*form.Definition, 0, len(c.order))
	for _, n := range c.order {
		out = append(out, c.fields[n])
	}
	return out
}

func (c *Catalog) Properties() []Property {
	return slices.Clone(c.model)
}

func (c *Catalog) FormField(name string) (*form.Definition, bool) {
	def, ok := c.fields[name]
	return def, ok
}

// SwitchToField replaces current with a field bound to bindingExpression.
// The destination keeps current's type when the property allows it.
func (c *Catalog) SwitchToField(current *form.Definition, bindingExpression string) (*form.Definition, bool) {
	if current == nil {
		return nil, false
	}
	if _, ok := c.fields[current.Name]; !ok {
		return nil, false
	}
	p, ok := c.property(bindingExpression)
	if !ok {
		return nil, false
	}
	if owner, bound := c.boundBy(bindingExpression); bound && owner.Name != current.Name {
		return nil, false
	}

	code := p.Types[0]
	if slices.Contains(p.Types, current.Code) {
		code = current.Code
	}
	label := p.Label
	if label == "" {
		label = current.Label
	}

	// The destination never reuses current's name; observers see it dropped
	// before current is removed.
	name := c.freeName(nameForExpression(bindingExpression))
	c.RemoveField(current.Name)
	dest := &form.Definition{
		Name:              name,
		Code:              code,
		BindingExpression: bindingExpression,
		Label:             label,
		Placeholder:       current.Placeholder,
		Required:          current.Required,
		ReadOnly:          current.ReadOnly,
	}
	if code == form.FieldTypeSelect {
		dest.Options = slices.Clone(current.Options)
	}
	c.put(dest)
	return dest, true
}

// SwitchToFieldType converts current to code when the binding allows it.
func (c *Catalog) SwitchToFieldType(current *form.Definition, code form.FieldType) (*form.Definition, bool) {
	if current == nil {
		return nil, false
	}
	if _, ok := c.fields[current.Name]; !ok {
		return nil, false
	}
	if !slices.Contains(c.CompatibleFieldTypes(current), code) {
		return nil, false
	}
	converted := current.Clone()
	converted.Code = code
	if code != form.FieldTypeSelect {
		converted.Options = nil
	}
	c.fields[current.Name] = converted
	return converted, true
}

// RenameField gives current a new, unused name.
func (c *Catalog) RenameField(current *form.Definition, name string) (*form.Definition, bool) {
	name = strings.TrimSpace(name)
	if current == nil || name == "" || form.IsUnbound(name) {
		return nil, false
	}
	if _, ok := c.fields[current.Name]; !ok {
		return nil, false
	}
	if _, taken := c.fields[name]; taken {
		return nil, false
	}
	renamed := current.Clone()
	renamed.Name = name
	delete(c.fields, current.Name)
	c.fields[name] = renamed
	for i, n := range c.order {
		if n == current.Name {
			c.order[i] = name
		}
	}
	return renamed, true
}

// CompatibleFields returns the unused binding expressions that accept
// current's type.
func (c *Catalog) CompatibleFields(current *form.Definition) []string {
	if current == nil {
		return nil
	}
	var out []string
	for _, p := range c.model {
		if !slices.Contains(p.Types, current.Code) {
			continue
		}
		if owner, bound := c.boundBy(p.Expression); bound && owner.Name != current.Name {
			continue
		}
		out = append(out, p.Expression)
	}
	return out
}

// CompatibleFieldTypes returns the types current may be converted to,
// always including its own.
func (c *Catalog) CompatibleFieldTypes(current *form.Definition) []form.FieldType {
	if current == nil {
		return nil
	}
	var out []form.FieldType
	if p, ok := c.property(current.BindingExpression); ok && current.BindingExpression != "" {
		out = slices.Clone(p.Types)
	} else {
		out = form.AllFieldTypes()
	}
	if !slices.Contains(out, current.Code) {
		out = append([]form.FieldType{current.Code}, out...)
	}
	return out
}

func (c *Catalog) put(def *form.Definition) {
	if _, exists := c.fields[def.Name]; !exists {
		c.order = append(c.order, def.Name)
	}
	c.fields[def.Name] = def
}

func (c *Catalog) property(expr string) (Property, bool) {
	for _, p := range c.model {
		if p.Expression == expr {
			return p, true
		}
	}
	return Property{}, false
}

func (c *Catalog) boundBy(expr string) (*form.Definition, bool) {
	for _, n := range c.order {
		if def := c.fields[n]; def.BindingExpression == expr {
			return def, true
		}
	}
	return nil, false
}

// freeName returns base, or base with the smallest numeric suffix not in use.
func (c *Catalog) freeName(base string) string {
	if _, taken := c.fields[base]; !taken {
		return base
	}
	for i := 2; ; i++ {
		n := base + "_" + strconv.Itoa(i)
		if _, taken := c.fields[n]; !taken {
			return n
		}
	}
}

// nameForExpression derives a field name from the last path segment.
func nameForExpression(expr string) string {
	if i := strings.LastIndex(expr, "."); i >= 0 && i < len(expr)-1 {
		return expr[i+1:]
	}
	return expr
}
