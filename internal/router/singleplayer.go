package router

import (
	"github.com/labstack/echo/v4"

	"github.com/documenso/singleplayer/internal/handler"
)

func registerSinglePlayerRoutes(g *echo.Group, h *handler.Handlers) {
	sp := g.Group("/singleplayer")
	sp.POST("/documents", h.SinglePlayer.CreateDocument())
	sp.POST("/documents/validate", h.SinglePlayer.ValidateDocument())
}
