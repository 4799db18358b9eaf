// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/documenso/singleplayer/internal/handler"
	"github.com/documenso/singleplayer/internal/middleware"
	"github.com/documenso/singleplayer/internal/server"
)

// NewRouter builds the Echo instance with global middleware and all routes.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	mw := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = mw.Global.GlobalErrorHandler

	// Order matters: the request ID must exist before the context logger
	// is built, and the logger must exist before requests are logged.
	router.Use(
		middleware.RequestID(),
		mw.ContextEnhancer.EnhanceContext(),
		mw.Global.RequestLogger(),
		mw.Global.Recover(),
		mw.Global.Secure(),
		mw.Global.CORS(),
		mw.Global.BodyLimit(),
	)

	if mw.RateLimit.Enabled() {
		router.Use(mw.RateLimit.Limit())
	}

	registerSystemRoutes(router, h)

	v1 := router.Group("/api/v1")
	registerSinglePlayerRoutes(v1, h)

	return router
}
