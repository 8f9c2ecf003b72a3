package catalog

import (
	"log/slog"

	"github.com/iw2rmb/formslot/event"
	"github.com/iw2rmb/formslot/form"
)

// Responder answers identity-resolution requests for the catalogs it holds
// and applies drop/remove notifications to them.
type Responder struct {
	catalogs  map[string]*Catalog
	responses event.Publisher[event.FormContextResponse]
	log       *slog.Logger
}

func NewResponder(responses event.Publisher[event.FormContextResponse], logger *slog.Logger) *Responder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Responder{
		catalogs:  make(map[string]*Catalog),
		responses: responses,
		log:       logger,
	}
}

// Add registers c under its form id, replacing any previous catalog.
func (r *Responder) Add(c *Catalog) {
	r.catalogs[c.FormID()] = c
}

func (r *Responder) Catalog(formID string) (*Catalog, bool) {
	c, ok := r.catalogs[formID]
	return c, ok
}

// Attach subscribes r to bus. The returned function detaches it.
func (r *Responder) Attach(bus *event.Bus) (detach func()) {
	subs := []event.Subscription{
		bus.Requests.Subscribe(r.HandleRequest),
		bus.Dropped.Subscribe(r.HandleDropped),
		bus.Removed.Subscribe(r.HandleRemoved),
	}
	return func() {
		for _, s := range subs {
			s.Unsubscribe()
		}
	}
}

// HandleRequest publishes a response echoing the request's identity and
// token. Requests for unknown forms are dropped.
func (r *Responder) HandleRequest(req event.FormContextRequest) {
	c, ok := r.catalogs[req.FormID]
	if !ok {
		r.log.Debug("request for unknown form", "form_id", req.FormID, "field", req.FieldName)
		return
	}
	r.responses.Publish(event.FormContextResponse{
		FormID:    req.FormID,
		FieldName: req.FieldName,
		Token:     req.Token,
		Context:   c,
	})
}

// HandleDropped places a field for names the catalog does not know yet:
// unbound placeholders become unbound fields of the encoded type, and names
// of free model properties become fields bound to them.
func (r *Responder) HandleDropped(ev event.FieldDropped) {
	c, ok := r.catalogs[ev.FormID]
	if !ok || ev.FieldName == "" {
		return
	}
	if _, exists := c.FormField(ev.FieldName); exists {
		return
	}

	def, ok := c.fieldForDrop(ev.FieldName)
	if !ok {
		r.log.Warn("dropped field has no definition", "form_id", ev.FormID, "field", ev.FieldName)
		return
	}
	if err := c.AddField(def); err != nil {
		r.log.Warn("failed to place dropped field", "form_id", ev.FormID, "field", ev.FieldName, "error", err)
	}
}

func (r *Responder) HandleRemoved(ev event.FieldRemoved) {
	c, ok := r.catalogs[ev.FormID]
	if !ok {
		return
	}
	c.RemoveField(ev.FieldName)
}

func (c *Catalog) fieldForDrop(name string) (*form.Definition, bool) {
	if form.IsUnbound(name) {
		code, _ := form.UnboundType(name)
		if !code.IsValid() {
			code = form.FieldTypeText
		}
		return &form.Definition{Name: name, Code: code}, true
	}
	for _, p := range c.model {
		if nameForExpression(p.Expression) != name {
			continue
		}
		if _, bound := c.boundBy(p.Expression); bound {
			return nil, false
		}
		return &form.Definition{
			Name:              name,
			Code:              p.Types[0],
			BindingExpression: p.Expression,
			Label:             p.Label,
		}, true
	}
	return nil, false
}
