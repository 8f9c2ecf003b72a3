package catalog_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/iw2rmb/formslot/event"
	"github.com/iw2rmb/formslot/form"
	"github.com/iw2rmb/formslot/form/catalog"
)

func attach(t *testing.T, c *catalog.Catalog) (*event.Bus, *[]event.FormContextResponse) {
	t.Helper()
	bus := event.NewBus()
	r := catalog.NewResponder(bus.Responses, nil)
	r.Add(c)
	detach := r.Attach(bus)
	t.Cleanup(detach)

	var got []event.FormContextResponse
	bus.Responses.Subscribe(func(resp event.FormContextResponse) {
		got = append(got, resp)
	})
	return bus, &got
}

func TestResponderAnswersKnownForm(t *testing.T) {
	c := newPersonCatalog(t)
	bus, got := attach(t, c)

	bus.Requests.Publish(event.FormContextRequest{FormID: "person", FieldName: "name", Token: "tok"})
	bus.Requests.Publish(event.FormContextRequest{FormID: "unknown", FieldName: "name", Token: "tok2"})
	bus.Flush()

	gt.Array(t, *got).Length(1)
	resp := (*got)[0]
	gt.Value(t, resp.FormID).Equal("person")
	gt.Value(t, resp.FieldName).Equal("name")
	gt.Value(t, resp.Token).Equal("tok")
	gt.Value(t, resp.Context.Path()).Equal(form.Path("forms/person"))
}

func TestResponderDetach(t *testing.T) {
	c := newPersonCatalog(t)
	bus := event.NewBus()
	r := catalog.NewResponder(bus.Responses, nil)
	r.Add(c)
	detach := r.Attach(bus)

	var n int
	bus.Responses.Subscribe(func(event.FormContextResponse) { n++ })
	detach()
	detach()
	bus.Requests.Publish(event.FormContextRequest{FormID: "person", FieldName: "name"})
	bus.Flush()
	gt.Value(t, n).Equal(0)
}

func TestResponderTracksDroppedUnbound(t *testing.T) {
	c := catalog.New("f", "")
	bus, _ := attach(t, c)

	name := form.UnboundPrefix + "checkbox_1700000000000"
	bus.Dropped.Publish(event.FieldDropped{FormID: "f", FieldName: name})
	bus.Dropped.Publish(event.FieldDropped{FormID: "f", FieldName: name})
	bus.Flush()

	gt.Array(t, c.Fields()).Length(1)
	def, ok := c.FormField(name)
	gt.Bool(t, ok).True()
	gt.Value(t, def.Code).Equal(form.FieldTypeCheckBox)
	gt.Value(t, def.BindingExpression).Equal("")
}

func TestResponderTracksDroppedProperty(t *testing.T) {
	c := newPersonCatalog(t)
	bus, _ := attach(t, c)

	bus.Dropped.Publish(event.FieldDropped{FormID: "person", FieldName: "age"})
	bus.Dropped.Publish(event.FieldDropped{FormID: "person", FieldName: "nobody"})
	bus.Flush()

	def, ok := c.FormField("age")
	gt.Bool(t, ok).True()
	gt.Value(t, def.Code).Equal(form.FieldTypeNumber)
	gt.Value(t, def.BindingExpression).Equal("person.age")
	_, ok = c.FormField("nobody")
	gt.Bool(t, ok).False()
}

func TestResponderTracksRemoved(t *testing.T) {
	c := newPersonCatalog(t)
	bus, _ := attach(t, c)

	bus.Removed.Publish(event.FieldRemoved{FormID: "person", FieldName: "name"})
	bus.Removed.Publish(event.FieldRemoved{FormID: "person", FieldName: "name"})
	bus.Flush()

	gt.Array(t, c.Fields()).Length(0)
}
