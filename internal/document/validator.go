package document

import (
	"sync"

	"github.com/documenso/singleplayer/internal/fieldmeta"
	"github.com/documenso/singleplayer/internal/validation"
)

const (
	documentDataTypeTag = "document_data_type"
	fieldTypeTag        = "field_type"
)

var registerOnce sync.Once

func register() {
	registerOnce.Do(func() {
		if err := validation.RegisterEnum(documentDataTypeTag, names(DocumentDataTypes())...); err != nil {
			panic(err)
		}
		if err := validation.RegisterEnum(fieldTypeTag, names(FieldTypes())...); err != nil {
			panic(err)
		}
	})
}

// FieldMetaValidator validates the "fieldMeta" property. Violation paths are
// relative to the metadata value; the request validator prefixes them.
type FieldMetaValidator interface {
	ValidateFieldMeta(raw any) (*fieldmeta.FieldMeta, validation.Violations)
}

// FieldMetaValidatorFunc adapts a function to FieldMetaValidator.
type FieldMetaValidatorFunc func(raw any) (*fieldmeta.FieldMeta, validation.Violations)

func (f FieldMetaValidatorFunc) ValidateFieldMeta(raw any) (*fieldmeta.FieldMeta, validation.Violations) {
	return f(raw)
}

// Option configures a RequestValidator.
type Option func(*RequestValidator)

// WithFieldMetaValidator replaces the default field metadata schema.
func WithFieldMetaValidator(fm FieldMetaValidator) Option {
	return func(v *RequestValidator) {
		if fm != nil {
			v.fieldMeta = fm
		}
	}
}

// RequestValidator turns untyped input into a CreateSinglePlayerDocumentRequest.
//
// It is stateless and safe for concurrent use.
type RequestValidator struct {
	fieldMeta FieldMetaValidator
}

// NewRequestValidator builds a validator using fieldmeta.Schema unless
// another delegate is supplied.
func NewRequestValidator(opts ...Option) *RequestValidator {
	register()

	v := &RequestValidator{fieldMeta: fieldmeta.NewSchema()}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate checks input against the creation request shape.
//
// On success it returns a freshly allocated request whose values equal the
// input's. On failure the error is validation.Violations listing every
// violated constraint; checks never stop at the first problem.
func (v *RequestValidator) Validate(input any) (*CreateSinglePlayerDocumentRequest, error) {
	var c validation.Collector

	root, ok := c.Object("", input)
	if !ok {
		return nil, c.Err()
	}

	req := &CreateSinglePlayerDocumentRequest{}

	if data, ok := c.ObjectField(root, "", "documentData"); ok {
		req.DocumentData.Data, _ = c.String(data, "documentData", "data")
		typ, _ := c.String(data, "documentData", "type")
		req.DocumentData.Type = DocumentDataType(typ)
	}

	req.DocumentName, _ = c.String(root, "", "documentName")

	if signer, ok := c.ObjectField(root, "", "signer"); ok {
		req.Signer.Email, _ = c.String(signer, "signer", "email")
		req.Signer.Name, _ = c.String(signer, "signer", "name")
		req.Signer.Signature, _ = c.String(signer, "signer", "signature")
		req.Signer.CustomText, _ = c.String(signer, "signer", "customText")
	}

	if fields, ok := c.Array(root, "", "fields"); ok {
		req.Fields = make([]FieldPlacement, len(fields))
		for i, raw := range fields {
			// Rejected elements stay as zero placeholders so that later
			// indices keep matching the input.
			req.Fields[i] = readFieldPlacement(&c, validation.Index("fields", i), raw)
		}
	}

	if raw, ok := c.Field(root, "", "fieldMeta"); ok {
		meta, violations := v.fieldMeta.ValidateFieldMeta(raw)
		c.Merge(violations.Nest("fieldMeta"))
		req.FieldMeta = meta
	}

	c.MergeUncovered(validation.Struct(req))

	if err := c.Err(); err != nil {
		return nil, err
	}
	return req, nil
}

func readFieldPlacement(c *validation.Collector, path string, raw any) FieldPlacement {
	var f FieldPlacement

	obj, ok := c.Object(path, raw)
	if !ok {
		return f
	}

	f.Page, _ = c.Number(obj, path, "page")
	typ, _ := c.String(obj, path, "type")
	f.Type = FieldType(typ)
	f.PositionX, _ = c.Number(obj, path, "positionX")
	f.PositionY, _ = c.Number(obj, path, "positionY")
	f.Width, _ = c.Number(obj, path, "width")
	f.Height, _ = c.Number(obj, path, "height")

	return f
}
