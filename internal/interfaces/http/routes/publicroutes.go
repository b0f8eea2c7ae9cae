package routes

import (
	"github.com/gin-gonic/gin"

	"inkwell/internal/interfaces/http/handlers"
)

// PublicRouteConfig holds dependencies for the unauthenticated site API.
type PublicRouteConfig struct {
	PostHandler     *handlers.PostHandler
	CommentHandler  *handlers.CommentHandler
	ReactionHandler *handlers.ReactionHandler
	HealthHandler   *handlers.HealthHandler
}

// SetupPublicRoutes configures the routes the published site calls.
func SetupPublicRoutes(engine *gin.Engine, cfg *PublicRouteConfig) {
	api := engine.Group("/api")
	{
		api.GET("/health", cfg.HealthHandler.Health)

		api.GET("/posts", cfg.PostHandler.List)
		api.GET("/posts/:slug", cfg.PostHandler.GetBySlug)

		api.GET("/comments", cfg.CommentHandler.List)
		api.POST("/comments", cfg.CommentHandler.Submit)

		api.GET("/reactions", cfg.ReactionHandler.List)
		api.POST("/reactions", cfg.ReactionHandler.Add)
	}
}
