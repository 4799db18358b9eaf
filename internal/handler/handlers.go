package handler

import (
	"github.com/documenso/singleplayer/internal/server"
	"github.com/documenso/singleplayer/internal/service"
)

// Handlers groups all HTTP handlers so router setup receives one object.
type Handlers struct {
	Health       *HealthHandler       // Health serves the service status endpoint.
	SinglePlayer *SinglePlayerHandler // SinglePlayer validates and submits single-player documents.
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:       NewHealthHandler(s),
		SinglePlayer: NewSinglePlayerHandler(s, services.SinglePlayer),
	}
}
