package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/iw2rmb/formslot/canvas"
	"github.com/iw2rmb/formslot/event"
	"github.com/iw2rmb/formslot/form"
	"github.com/iw2rmb/formslot/form/catalog"
)

func TestDefaultCatalogLoads(t *testing.T) {
	cat, err := catalog.Load(bytes.NewReader(defaultCatalog))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cat.FormID() != "person" || len(cat.Fields()) != 3 {
		t.Fatalf("catalog: id=%q fields=%d", cat.FormID(), len(cat.Fields()))
	}
}

func TestLayoutRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.json")

	l, err := readLayout(path)
	if err != nil || l != nil {
		t.Fatalf("missing layout: got %v, %v", l, err)
	}

	want := layout{FormID: "person", Slots: []map[string]string{
		{form.SettingFormID: "person", form.SettingFieldName: "name"},
	}}
	if err := writeLayout(path, want); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := readLayout(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.FormID != want.FormID || len(got.Slots) != 1 || got.Slots[0][form.SettingFieldName] != "name" {
		t.Fatalf("layout: got %+v", got)
	}
}

func TestRestoreWithoutLayoutPlacesCatalogFields(t *testing.T) {
	cat, err := catalog.Load(bytes.NewReader(defaultCatalog))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	c := canvas.New(canvas.Config{FormID: cat.FormID(), Bus: event.NewBus()})
	if err := restore(c, cat, ""); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if c.Len() != 3 {
		t.Fatalf("slots: got %d, want 3", c.Len())
	}
}
