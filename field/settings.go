package field

import "github.com/iw2rmb/formslot/form"

var settingsKeys = []string{form.SettingFormID, form.SettingFieldName}

// SettingsKeys lists the settings persisted by the host for each component.
func (c *Component) SettingsKeys() []string {
	return append([]string(nil), settingsKeys...)
}

// SetSetting stores a persisted setting. Unbound placeholder names get a
// timestamp suffix so every instance ends up with its own name.
func (c *Component) SetSetting(key, value string) {
	switch key {
	case form.SettingFormID:
		c.formID = value
	case form.SettingFieldName:
		if form.IsUnboundPlaceholder(value) {
			value = c.uniqueUnboundName(value)
		}
		c.fieldName = value
	}
}

func (c *Component) Setting(key string) (string, bool) {
	switch key {
	case form.SettingFormID:
		return c.formID, true
	case form.SettingFieldName:
		return c.fieldName, true
	default:
		return "", false
	}
}
