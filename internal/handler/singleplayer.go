package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/documenso/singleplayer/internal/document"
	"github.com/documenso/singleplayer/internal/errs"
	"github.com/documenso/singleplayer/internal/server"
	"github.com/documenso/singleplayer/internal/service"
)

// SinglePlayerHandler serves the self-signing document endpoints.
type SinglePlayerHandler struct {
	Handler
	service *service.SinglePlayerService
}

// NewSinglePlayerHandler constructs a SinglePlayerHandler.
func NewSinglePlayerHandler(s *server.Server, svc *service.SinglePlayerService) *SinglePlayerHandler {
	return &SinglePlayerHandler{
		Handler: NewHandler(s),
		service: svc,
	}
}

func (h *SinglePlayerHandler) newPayload() *document.CreateSinglePlayerDocumentPayload {
	return document.NewCreateSinglePlayerDocumentPayload(h.server.Validator)
}

// CreateDocument accepts a creation request and answers 201 with its submission.
func (h *SinglePlayerHandler) CreateDocument() echo.HandlerFunc {
	return Handle(h.Handler, h.createDocument, http.StatusCreated, h.newPayload)
}

// ValidateDocument checks a creation request without submitting it.
// A valid request answers 204.
func (h *SinglePlayerHandler) ValidateDocument() echo.HandlerFunc {
	return HandleNoContent(h.Handler, h.validateDocument, http.StatusNoContent, h.newPayload)
}

func (h *SinglePlayerHandler) createDocument(
	c echo.Context,
	payload *document.CreateSinglePlayerDocumentPayload,
) (*service.Submission, error) {
	if payload.Request == nil {
		return nil, errs.NewInternalServerError()
	}
	return h.service.Submit(c.Request().Context(), payload.Request)
}

func (h *SinglePlayerHandler) validateDocument(
	c echo.Context,
	payload *document.CreateSinglePlayerDocumentPayload,
) error {
	return nil
}
