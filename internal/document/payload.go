package document

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// CreateSinglePlayerDocumentPayload adapts RequestValidator to request binding.
//
// Binding keeps the body untyped; Validate then produces Request.
// Numbers are decoded as json.Number so that no precision is lost before validation.
type CreateSinglePlayerDocumentPayload struct {
	raw       any
	validator *RequestValidator

	// Request is set once Validate succeeds.
	Request *CreateSinglePlayerDocumentRequest
}

// NewCreateSinglePlayerDocumentPayload returns an empty payload validated by v.
func NewCreateSinglePlayerDocumentPayload(v *RequestValidator) *CreateSinglePlayerDocumentPayload {
	return &CreateSinglePlayerDocumentPayload{validator: v}
}

// UnmarshalJSON stores the decoded body without interpreting it.
func (p *CreateSinglePlayerDocumentPayload) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}

	p.raw = raw
	return nil
}

// Validate runs the request validator over the bound body.
func (p *CreateSinglePlayerDocumentPayload) Validate() error {
	if p.validator == nil {
		p.validator = NewRequestValidator()
	}

	req, err := p.validator.Validate(p.raw)
	if err != nil {
		return err
	}

	p.Request = req
	return nil
}
