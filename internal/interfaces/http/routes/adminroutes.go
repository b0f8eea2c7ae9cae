package routes

import (
	"github.com/gin-gonic/gin"

	"inkwell/internal/interfaces/http/handlers"
	"inkwell/internal/interfaces/http/middleware"
)

// AdminRouteConfig holds dependencies for the admin console API.
type AdminRouteConfig struct {
	AuthHandler         *handlers.AuthHandler
	PostHandler         *handlers.PostHandler
	AdminCommentHandler *handlers.AdminCommentHandler
	HealthHandler       *handlers.HealthHandler
	AuthMiddleware      *middleware.AuthMiddleware
	AllowedOrigins      []string
}

// SetupAdminRoutes configures the session-cookie-protected console routes.
// Every mutating route inside the group passes CSRF validation; login is the
// single exemption because no cookie pair exists yet.
func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	admin := engine.Group("/api/admin")
	admin.Use(middleware.CSRF(cfg.AllowedOrigins))
	{
		admin.POST("/login", cfg.AuthHandler.Login)
		admin.POST("/logout", cfg.AuthHandler.Logout)
		admin.GET("/session", cfg.AuthHandler.Session)

		authed := admin.Group("")
		authed.Use(cfg.AuthMiddleware.RequireAdmin())
		{
			authed.GET("/posts", cfg.PostHandler.ListAll)
			authed.POST("/posts", cfg.PostHandler.Create)
			authed.GET("/preview/:slug", cfg.PostHandler.Preview)
			authed.PUT("/posts/:id", cfg.PostHandler.Update)
			authed.POST("/posts/:id/publish", cfg.PostHandler.Publish)
			authed.POST("/posts/:id/unpublish", cfg.PostHandler.Unpublish)

			authed.GET("/comments", cfg.AdminCommentHandler.ListByStatus)
			authed.PUT("/comments/:id", cfg.AdminCommentHandler.Moderate)
			authed.DELETE("/comments/:id", cfg.AdminCommentHandler.Delete)
			authed.POST("/comments/:id/ban", cfg.AdminCommentHandler.Ban)

			authed.POST("/repair-schema", cfg.HealthHandler.RepairSchema)
		}
	}
}
