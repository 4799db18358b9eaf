package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/documenso/singleplayer/internal/document"
	"github.com/documenso/singleplayer/internal/fieldmeta"
)

func TestSubmit(t *testing.T) {
	fixed := time.Date(2026, 3, 14, 9, 26, 53, 0, time.FixedZone("CET", 3600))
	svc := &SinglePlayerService{now: func() time.Time { return fixed }}

	req := &document.CreateSinglePlayerDocumentRequest{
		DocumentData: document.DocumentData{Data: "s3://bucket/doc.pdf", Type: document.DocumentDataTypeS3Path},
		DocumentName: "doc.pdf",
		Signer:       document.Signer{Email: "a@b.co"},
		Fields: []document.FieldPlacement{
			{Type: document.FieldTypeSignature},
			{Type: document.FieldTypeDate},
			{Type: document.FieldTypeSignature},
		},
		FieldMeta: &fieldmeta.FieldMeta{Type: fieldmeta.TypeDate},
	}

	sub, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, sub.ID)
	assert.Equal(t, "doc.pdf", sub.DocumentName)
	assert.Equal(t, "S3_PATH", sub.DocumentType)
	assert.Equal(t, "a@b.co", sub.SignerEmail)
	assert.Equal(t, 3, sub.FieldCount)
	assert.Equal(t, []string{"SIGNATURE", "DATE"}, sub.FieldTypes)
	assert.True(t, sub.HasFieldMeta)
	assert.Equal(t, fixed.UTC(), sub.ReceivedAt)
}

func TestSubmitEmptyFields(t *testing.T) {
	svc := &SinglePlayerService{now: time.Now}

	sub, err := svc.Submit(context.Background(), &document.CreateSinglePlayerDocumentRequest{Fields: []document.FieldPlacement{}})
	require.NoError(t, err)
	assert.Equal(t, 0, sub.FieldCount)
	assert.NotNil(t, sub.FieldTypes)
	assert.False(t, sub.HasFieldMeta)
}

func TestSubmitNil(t *testing.T) {
	svc := &SinglePlayerService{now: time.Now}

	_, err := svc.Submit(context.Background(), nil)
	assert.Error(t, err)
}
