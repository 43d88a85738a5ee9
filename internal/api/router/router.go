package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/aliskhannn/notifyd/internal/api/handlers/stats"
	"github.com/aliskhannn/notifyd/internal/middlewares"
)

// New builds the debug API router.
func New(handler *stats.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.CORSMiddleware())
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api")
	{
		api.GET("/stats", handler.GetStats)
		api.GET("/notifications", handler.GetAll)
	}

	return e
}
