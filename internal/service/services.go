package service

import (
	"github.com/documenso/singleplayer/internal/server"
)

// Services groups the business layer.
type Services struct {
	SinglePlayer *SinglePlayerService
}

// NewServices builds every service from the application container.
func NewServices(s *server.Server) *Services {
	return &Services{
		SinglePlayer: NewSinglePlayerService(s),
	}
}
