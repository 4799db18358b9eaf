package fieldmeta

import (
	"sync"

	"github.com/documenso/singleplayer/internal/validation"
)

const typeTag = "fieldmeta_type"

var registerOnce sync.Once

func register() {
	registerOnce.Do(func() {
		if err := validation.RegisterEnum(typeTag, typeNames()...); err != nil {
			panic(err)
		}
	})
}

// Schema validates field metadata. Paths in its violations are relative to
// the metadata value itself ("type", "values[0].id").
type Schema struct{}

// NewSchema returns a ready Schema.
func NewSchema() Schema {
	register()
	return Schema{}
}

// ValidateFieldMeta validates raw metadata. A nil result with no violations
// means the value was null.
func (Schema) ValidateFieldMeta(raw any) (*FieldMeta, validation.Violations) {
	register()

	if raw == nil {
		return nil, nil
	}

	var c validation.Collector

	obj, ok := c.Object("", raw)
	if !ok {
		return nil, c.Violations()
	}

	typ, ok := c.String(obj, "", "type")
	if !ok {
		return nil, c.Violations()
	}
	if vs := validation.Var("type", typ, typeTag); vs != nil {
		c.Merge(vs)
		return nil, c.Violations()
	}

	meta := &FieldMeta{Type: Type(typ)}

	meta.Label, _ = c.OptionalString(obj, "", "label")
	meta.Placeholder, _ = c.OptionalString(obj, "", "placeholder")
	meta.Required, _ = c.OptionalBool(obj, "", "required")
	meta.ReadOnly, _ = c.OptionalBool(obj, "", "readOnly")
	meta.FontSize, _ = c.OptionalNumber(obj, "", "fontSize")

	switch meta.Type {
	case TypeText:
		meta.Text, _ = c.OptionalString(obj, "", "text")
		meta.CharacterLimit, _ = c.OptionalNumber(obj, "", "characterLimit")

	case TypeNumber:
		meta.NumberFormat, _ = c.OptionalString(obj, "", "numberFormat")
		meta.Value, _ = c.OptionalString(obj, "", "value")
		meta.MinValue, _ = c.OptionalNumber(obj, "", "minValue")
		meta.MaxValue, _ = c.OptionalNumber(obj, "", "maxValue")

	case TypeRadio:
		meta.Values = readChoices(&c, obj)

	case TypeCheckbox:
		meta.Values = readChoices(&c, obj)
		meta.ValidationRule, _ = c.OptionalString(obj, "", "validationRule")
		meta.ValidationLength, _ = c.OptionalNumber(obj, "", "validationLength")

	case TypeDropdown:
		meta.Values = readDropdownOptions(&c, obj)
		meta.DefaultValue, _ = c.OptionalString(obj, "", "defaultValue")
	}

	c.MergeUncovered(validation.Struct(meta))

	if vs := c.Violations(); vs != nil {
		return nil, vs
	}
	return meta, nil
}

// readChoices reads radio/checkbox values: {id: number, checked: bool, value: string}.
func readChoices(c *validation.Collector, obj map[string]any) []Option {
	arr, ok := c.OptionalArray(obj, "", "values")
	if !ok || arr == nil {
		return nil
	}

	options := make([]Option, 0, len(arr))
	for i, el := range arr {
		path := validation.Index("values", i)

		item, ok := c.Object(path, el)
		if !ok {
			continue
		}

		var opt Option
		if id, ok := c.Number(item, path, "id"); ok {
			opt.ID = &id
		}
		if checked, ok := c.Bool(item, path, "checked"); ok {
			opt.Checked = &checked
		}
		opt.Value, _ = c.String(item, path, "value")

		options = append(options, opt)
	}
	return options
}

// readDropdownOptions reads dropdown values: {value: string}.
func readDropdownOptions(c *validation.Collector, obj map[string]any) []Option {
	arr, ok := c.OptionalArray(obj, "", "values")
	if !ok || arr == nil {
		return nil
	}

	options := make([]Option, 0, len(arr))
	for i, el := range arr {
		path := validation.Index("values", i)

		item, ok := c.Object(path, el)
		if !ok {
			continue
		}

		value, _ := c.String(item, path, "value")
		options = append(options, Option{Value: value})
	}
	return options
}
