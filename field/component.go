package field

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/formslot/event"
	"github.com/iw2rmb/formslot/form"
	"github.com/iw2rmb/formslot/renderer"
	"github.com/iw2rmb/formslot/widget"
)

// RenderingContext carries the host's persisted properties for the slot
// being rendered.
type RenderingContext struct {
	Properties map[string]string
}

// Component is one field slot on a form canvas.
type Component struct {
	cfg Config
	log *slog.Logger

	formID    string
	fieldName string
	formPath  form.Path

	state     binding
	editorCtx form.EditorContext
	modal     modalState
	content   *widget.Container

	// pending is the token of the outstanding FormContextRequest.
	pending string
	sub     event.Subscription
	closed  bool
}

// binding couples the field with the renderer drawing it. It only changes
// through Component.bind.
type binding struct {
	field    *form.Definition
	renderer renderer.Renderer
}

type rebindMode uint8

const (
	// resolveRenderer looks the renderer up again from the registry.
	resolveRenderer rebindMode = iota
	// keepRenderer rebinds the current renderer in place.
	keepRenderer
)

// New returns an uninitialized component subscribed to cfg.Responses.
func New(cfg Config) *Component {
	cfg = normalizeConfig(cfg)
	c := &Component{
		cfg:     cfg,
		log:     cfg.Logger,
		content: widget.NewContainer(),
	}
	if cfg.Responses != nil {
		c.sub = cfg.Responses.Subscribe(c.onResponse)
	}
	return c
}

// Init establishes the component's identity from a resolved definition.
// The field name always follows def.Name.
func (c *Component) Init(formID string, def *form.Definition, path form.Path) {
	c.formID = formID
	c.formPath = path
	if def != nil {
		c.fieldName = def.Name
	}
	c.bind(def, resolveRenderer)
	c.notify(ChangeInit)
}

// bind is the only place where field and renderer change.
func (c *Component) bind(def *form.Definition, mode rebindMode) {
	if mode == keepRenderer && c.state.renderer != nil && def != nil {
		c.state.field = def
		c.state.renderer.SetField(def)
		return
	}

	// A fresh renderer starts from an empty container; callers render into
	// it once the binding is complete.
	c.state = binding{field: def}
	c.content.Clear()
	if def == nil {
		return
	}
	r, ok := c.cfg.Renderers.RendererFor(def)
	if !ok {
		c.log.Debug("no renderer for field", "form_id", c.formID, "field", def.Name, "code", def.Code)
		return
	}
	r.Init(c, c.formPath)
	c.state.renderer = r
}

func (c *Component) Identity() form.Identity {
	return form.Identity{FormID: c.formID, FieldName: c.fieldName}
}

func (c *Component) FormID() string { return c.formID }

func (c *Component) FieldName() string { return c.fieldName }

func (c *Component) FormPath() form.Path { return c.formPath }

// Field returns the bound definition, nil until resolved.
func (c *Component) Field() *form.Definition { return c.state.field }

// Renderer returns the active renderer, nil while degraded.
func (c *Component) Renderer() renderer.Renderer { return c.state.renderer }

// EditorContext returns the context adopted from the last response.
func (c *Component) EditorContext() form.EditorContext { return c.editorCtx }

// Content returns the container every display path renders into.
func (c *Component) Content() *widget.Container { return c.content }

// Pending reports whether a FormContextRequest is outstanding.
func (c *Component) Pending() bool { return c.pending != "" }

func (c *Component) Closed() bool { return c.closed }

// DragWidget returns the handle shown while dragging the slot.
func (c *Component) DragWidget() widget.Widget {
	if c.state.renderer != nil {
		return c.state.renderer.DragWidget()
	}
	return widget.NewText("⠿ "+c.fieldName, lipgloss.NewStyle().Faint(true))
}

func (c *Component) PreviewWidget(ctx RenderingContext) widget.Widget {
	return c.generateContent(ctx)
}

func (c *Component) ShowWidget(ctx RenderingContext) widget.Widget {
	return c.generateContent(ctx)
}

func (c *Component) generateContent(ctx RenderingContext) *widget.Container {
	if c.state.renderer != nil {
		c.renderContent()
	} else {
		c.requestField(ctx.Properties)
	}
	return c.content
}

// renderContent replaces the container's content with one fresh widget.
func (c *Component) renderContent() {
	c.content.Clear()
	if c.state.renderer == nil {
		return
	}
	c.content.Add(c.state.renderer.RenderWidget())
}

// requestField fills the identity from props and asks the editor context
// for the definition. It returns immediately; see onResponse.
func (c *Component) requestField(props map[string]string) {
	if c.state.field != nil || c.closed {
		return
	}
	if c.fieldName == "" {
		c.fieldName = props[form.SettingFieldName]
	}
	if c.formID == "" {
		c.formID = props[form.SettingFormID]
	}
	if c.pending == "" {
		c.pending = event.NewToken()
	}
	c.cfg.Requests.Publish(event.FormContextRequest{
		FormID:    c.formID,
		FieldName: c.fieldName,
		Token:     c.pending,
	})
}

func (c *Component) onResponse(resp event.FormContextResponse) {
	if c.closed {
		return
	}
	if !resp.Identity().Matches(c.Identity()) {
		return
	}
	if resp.Token != "" && resp.Token != c.pending {
		c.log.Debug("ignoring response for another instance", "form_id", c.formID, "field", c.fieldName)
		return
	}
	if resp.Context == nil {
		return
	}

	c.editorCtx = resp.Context
	def, ok := resp.Context.FormField(c.fieldName)
	if !ok {
		c.log.Debug("field unknown to editor context", "form_id", c.formID, "field", c.fieldName)
		return
	}
	if resp.Token == "" && c.pending == "" && def == c.state.field {
		// Redelivery of an answer already applied.
		return
	}
	c.pending = ""
	c.Init(c.formID, def, resp.Context.Path())
	if c.state.renderer == nil {
		return
	}
	c.renderContent()
	if c.modal.isOpen() {
		c.state.renderer.LoadFieldProperties(c.modal.handle)
	}
	c.notify(ChangeResolved)
}

// SetFieldName renames the bound field through the editor context. Before
// the field is resolved it only changes the slot's name.
func (c *Component) SetFieldName(name string) {
	if name == "" || name == c.fieldName {
		return
	}
	if c.state.field == nil {
		c.fieldName = name
		return
	}
	rn, ok := c.editorCtx.(form.FieldRenamer)
	if !ok {
		return
	}
	def, ok := rn.RenameField(c.state.field, name)
	if !ok || def == nil {
		return
	}
	c.fieldName = def.Name
	c.bind(def, keepRenderer)
	c.notify(ChangeRenamed)
}

// CompatibleFields lists binding expressions the field can switch to.
func (c *Component) CompatibleFields() []string {
	if c.editorCtx == nil || c.state.field == nil {
		return nil
	}
	return c.editorCtx.CompatibleFields(c.state.field)
}

// CompatibleFieldTypes lists type codes the field can be converted to.
func (c *Component) CompatibleFieldTypes() []form.FieldType {
	if c.editorCtx == nil || c.state.field == nil {
		return nil
	}
	return c.editorCtx.CompatibleFieldTypes(c.state.field)
}

// OnDrop announces the slot's field to the canvas.
func (c *Component) OnDrop() {
	c.cfg.Dropped.Publish(event.FieldDropped{FormID: c.formID, FieldName: c.fieldName})
}

// OnRemove announces that the slot is vacated and closes the component.
func (c *Component) OnRemove() {
	c.cfg.Removed.Publish(event.FieldRemoved{FormID: c.formID, FieldName: c.fieldName})
	c.Close()
}

// Close detaches the component from the event channels. Late responses and
// hide callbacks of a previously open modal are ignored afterwards.
func (c *Component) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.pending = ""
	if c.sub != nil {
		c.sub.Unsubscribe()
	}
	c.modal.discard()
}

// Update forwards input to the open properties modal.
func (c *Component) Update(msg tea.Msg) tea.Cmd {
	if !c.modal.isOpen() {
		return nil
	}
	return c.modal.handle.Update(msg)
}

func (c *Component) View() string { return c.content.View() }

func (c *Component) uniqueUnboundName(placeholder string) string {
	return form.UniqueUnboundName(placeholder, c.cfg.Stamps.Next(c.cfg.Clock()))
}
