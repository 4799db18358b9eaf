package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/documenso/singleplayer/internal/document"
	"github.com/documenso/singleplayer/internal/server"
)

// Submission acknowledges a validated single-player document request.
type Submission struct {
	ID           uuid.UUID `json:"id"`
	DocumentName string    `json:"documentName"`
	DocumentType string    `json:"documentType"`
	SignerEmail  string    `json:"signerEmail"`
	FieldCount   int       `json:"fieldCount"`
	FieldTypes   []string  `json:"fieldTypes"`
	HasFieldMeta bool      `json:"hasFieldMeta"`
	ReceivedAt   time.Time `json:"receivedAt"`
}

// SinglePlayerService accepts validated creation requests.
//
// Document storage, field persistence and signer notification belong to
// downstream systems; this service only acknowledges what it received.
type SinglePlayerService struct {
	server *server.Server
	now    func() time.Time
}

// NewSinglePlayerService constructs the service.
func NewSinglePlayerService(s *server.Server) *SinglePlayerService {
	return &SinglePlayerService{
		server: s,
		now:    time.Now,
	}
}

// Submit acknowledges req and returns its submission receipt.
func (s *SinglePlayerService) Submit(ctx context.Context, req *document.CreateSinglePlayerDocumentRequest) (*Submission, error) {
	if req == nil {
		return nil, errors.New("submit: request is nil")
	}

	sub := &Submission{
		ID:           uuid.New(),
		DocumentName: req.DocumentName,
		DocumentType: string(req.DocumentData.Type),
		SignerEmail:  req.Signer.Email,
		FieldCount:   len(req.Fields),
		FieldTypes:   distinctFieldTypes(req.Fields),
		HasFieldMeta: req.FieldMeta != nil,
		ReceivedAt:   s.now().UTC(),
	}

	zerolog.Ctx(ctx).Info().
		Str("submission_id", sub.ID.String()).
		Str("document_name", sub.DocumentName).
		Int("field_count", sub.FieldCount).
		Msg("single player document accepted")

	return sub, nil
}

// distinctFieldTypes lists field types in first-seen order.
func distinctFieldTypes(fields []document.FieldPlacement) []string {
	seen := make(map[document.FieldType]struct{}, len(fields))
	types := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, ok := seen[f.Type]; ok {
			continue
		}
		seen[f.Type] = struct{}{}
		types = append(types, string(f.Type))
	}
	return types
}
