package form

import (
	"testing"
	"time"
)

func TestIsUnboundPlaceholder(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{name: "__unbound_field_text_", want: true},
		{name: "__unbound_field_", want: true},
		{name: "__unbound_field_text_1700000000000", want: false},
		{name: "firstName", want: false},
		{name: "unbound_field_text_", want: false},
		{name: "", want: false},
	}

	for _, tc := range cases {
		if got := IsUnboundPlaceholder(tc.name); got != tc.want {
			t.Fatalf("IsUnboundPlaceholder(%q): got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestUniqueUnboundName_AppendsMillis(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	got := UniqueUnboundName(UnboundPlaceholder(FieldTypeDate), now)
	if want := "__unbound_field_date_1700000000123"; got != want {
		t.Fatalf("unique name: got %q, want %q", got, want)
	}
	if IsUnboundPlaceholder(got) {
		t.Fatalf("suffixed name must not be a placeholder anymore: %q", got)
	}
	if !IsUnbound(got) {
		t.Fatalf("suffixed name must stay unbound: %q", got)
	}
}

func TestUnboundType(t *testing.T) {
	code, ok := UnboundType("__unbound_field_textarea_1700000000123")
	if !ok || code != FieldTypeTextArea {
		t.Fatalf("unbound type: got (%q,%v), want (%q,true)", code, ok, FieldTypeTextArea)
	}
	if _, ok := UnboundType("lastName"); ok {
		t.Fatalf("bound name must not report a type")
	}
	if _, ok := UnboundType("__unbound_field_"); ok {
		t.Fatalf("bare prefix must not report a type")
	}
}
