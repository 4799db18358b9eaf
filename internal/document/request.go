// Package document holds the single-player document creation request: its
// typed shape and the validator that produces it from untyped input.
//
// A single-player document is signed by one party in one sitting, as opposed
// to a multi-recipient signing workflow.
package document

import "github.com/documenso/singleplayer/internal/fieldmeta"

// CreateSinglePlayerDocumentRequest is a validated creation request.
//
// Values are only ever produced by RequestValidator and are not shared with
// the input they were read from.
type CreateSinglePlayerDocumentRequest struct {
	DocumentData DocumentData     `json:"documentData"`
	DocumentName string           `json:"documentName"`
	Signer       Signer           `json:"signer"`
	Fields       []FieldPlacement `json:"fields" validate:"dive"`

	// FieldMeta is judged by the injected FieldMetaValidator; nil means null.
	FieldMeta *fieldmeta.FieldMeta `json:"fieldMeta" validate:"-"`
}

// DocumentData carries the document payload.
type DocumentData struct {
	Data string           `json:"data"`
	Type DocumentDataType `json:"type" validate:"document_data_type"`
}

// Signer identifies the person signing the document.
type Signer struct {
	Email      string `json:"email" validate:"min=1,email"`
	Name       string `json:"name"`
	Signature  string `json:"signature"`
	CustomText string `json:"customText"`
}

// FieldPlacement positions one interactive field on a page.
// Coordinates and sizes are taken as given; no range checks apply.
type FieldPlacement struct {
	Page      float64   `json:"page"`
	Type      FieldType `json:"type" validate:"field_type"`
	PositionX float64   `json:"positionX"`
	PositionY float64   `json:"positionY"`
	Width     float64   `json:"width"`
	Height    float64   `json:"height"`
}
