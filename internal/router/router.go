package router

import (
	"github.com/gin-gonic/gin"
	"github.com/pageza/devconnector/backend/config"
	"github.com/pageza/devconnector/backend/internal/api"
	"github.com/pageza/devconnector/backend/internal/middleware"
)

// SetupRouter builds the engine with the global middleware stack and all routes
func SetupRouter(cfg *config.Config, deps api.Dependencies) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery(deps.Logger))
	router.Use(middleware.RequestLogger(deps.Logger))
	router.Use(middleware.CORS(cfg.Server.CORSOrigins, cfg.Auth.TokenHeader))

	if deps.TokenHeader == "" {
		deps.TokenHeader = cfg.Auth.TokenHeader
	}
	api.RegisterRoutes(router, deps)

	return router
}
