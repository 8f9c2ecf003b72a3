package form

import (
	"strconv"
	"strings"
	"time"
)

// Setting keys persisted by the hosting canvas for each component.
const (
	SettingFormID    = "form_id"
	SettingFieldName = "field_name"
)

// Unbound placeholders look like UnboundPrefix + <anything> + NameSeparator.
const (
	UnboundPrefix = "__unbound_field_"
	NameSeparator = "_"
)

// IsUnboundPlaceholder reports whether name is a fresh unbound placeholder
// that still needs a per-instance suffix.
func IsUnboundPlaceholder(name string) bool {
	return strings.HasPrefix(name, UnboundPrefix) && strings.HasSuffix(name, NameSeparator)
}

// UnboundPlaceholder builds the placeholder for a field of the given type.
func UnboundPlaceholder(code FieldType) string {
	return UnboundPrefix + string(code) + NameSeparator
}

// IsUnbound reports whether name was generated from an unbound placeholder.
func IsUnbound(name string) bool {
	return strings.HasPrefix(name, UnboundPrefix)
}

// UnboundType extracts the type code encoded in an unbound name.
// The second result is false for names that are not unbound.
func UnboundType(name string) (FieldType, bool) {
	if !IsUnbound(name) {
		return "", false
	}
	rest := strings.TrimPrefix(name, UnboundPrefix)
	i := strings.LastIndex(rest, NameSeparator)
	if i <= 0 {
		return "", false
	}
	return FieldType(rest[:i]), true
}

// UniqueUnboundName appends the millisecond timestamp of now to placeholder.
func UniqueUnboundName(placeholder string, now time.Time) string {
	return placeholder + strconv.FormatInt(now.UnixMilli(), 10)
}
