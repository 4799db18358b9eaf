package document

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/documenso/singleplayer/internal/validation"
)

func TestPayloadUnmarshalAndValidate(t *testing.T) {
	body, err := json.Marshal(validInput())
	require.NoError(t, err)

	p := NewCreateSinglePlayerDocumentPayload(NewRequestValidator())
	require.NoError(t, json.Unmarshal(body, p))
	require.NoError(t, p.Validate())

	require.NotNil(t, p.Request)
	assert.Equal(t, "lease.pdf", p.Request.DocumentName)
	assert.Len(t, p.Request.Fields, 2)
}

func TestPayloadRejectsNumericStrings(t *testing.T) {
	body := []byte(`{
		"documentData": {"data": "x", "type": "BYTES"},
		"documentName": "a.pdf",
		"signer": {"email": "a@b.co", "name": "", "signature": "", "customText": ""},
		"fields": [{"page": "1", "type": "NAME", "positionX": 1, "positionY": 2, "width": 3, "height": 4}],
		"fieldMeta": null
	}`)

	var p CreateSinglePlayerDocumentPayload
	require.NoError(t, json.Unmarshal(body, &p))

	err := p.Validate()
	var vs validation.Violations
	require.ErrorAs(t, err, &vs)
	assert.True(t, vs.Has("fields[0].page", validation.KindTypeMismatch))
	assert.Nil(t, p.Request)
}

func TestPayloadUnmarshalMalformed(t *testing.T) {
	var p CreateSinglePlayerDocumentPayload
	assert.Error(t, p.UnmarshalJSON([]byte(`{"documentName": `)))
}
