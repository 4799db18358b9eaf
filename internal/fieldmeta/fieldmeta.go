// Package fieldmeta describes the kind-specific configuration attached to a
// field placement (default text, required flag, choice values, ...) and
// validates it from untyped input.
//
// Metadata is optional: a null value means "no metadata". Otherwise it is an
// object discriminated by its "type" property.
package fieldmeta

// Type discriminates the metadata variants.
type Type string

const (
	TypeInitials Type = "initials"
	TypeName     Type = "name"
	TypeEmail    Type = "email"
	TypeDate     Type = "date"
	TypeText     Type = "text"
	TypeNumber   Type = "number"
	TypeRadio    Type = "radio"
	TypeCheckbox Type = "checkbox"
	TypeDropdown Type = "dropdown"
)

// Types lists every metadata variant.
func Types() []Type {
	return []Type{
		TypeInitials, TypeName, TypeEmail, TypeDate, TypeText,
		TypeNumber, TypeRadio, TypeCheckbox, TypeDropdown,
	}
}

func typeNames() []string {
	types := Types()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return names
}

// FieldMeta is the validated metadata. Only the properties belonging to Type are set.
type FieldMeta struct {
	Type Type `json:"type" validate:"fieldmeta_type"`

	Label       *string  `json:"label,omitempty"`
	Placeholder *string  `json:"placeholder,omitempty"`
	Required    *bool    `json:"required,omitempty"`
	ReadOnly    *bool    `json:"readOnly,omitempty"`
	FontSize    *float64 `json:"fontSize,omitempty" validate:"omitempty,min=8,max=96"`

	// text
	Text           *string  `json:"text,omitempty"`
	CharacterLimit *float64 `json:"characterLimit,omitempty"`

	// number
	NumberFormat *string  `json:"numberFormat,omitempty"`
	Value        *string  `json:"value,omitempty"`
	MinValue     *float64 `json:"minValue,omitempty"`
	MaxValue     *float64 `json:"maxValue,omitempty"`

	// radio, checkbox, dropdown
	Values []Option `json:"values,omitempty"`

	// checkbox
	ValidationRule   *string  `json:"validationRule,omitempty"`
	ValidationLength *float64 `json:"validationLength,omitempty"`

	// dropdown
	DefaultValue *string `json:"defaultValue,omitempty"`
}

// Option is one choice of a radio, checkbox or dropdown field.
// Dropdown options only carry Value.
type Option struct {
	ID      *float64 `json:"id,omitempty"`
	Checked *bool    `json:"checked,omitempty"`
	Value   string   `json:"value"`
}
