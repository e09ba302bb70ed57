package routes

import (
	"github.com/gin-gonic/gin"

	complainthandlers "ecomplaint/internal/interfaces/http/handlers/complaint"
	"ecomplaint/internal/interfaces/http/middleware"
	"ecomplaint/internal/shared/authorization"
)

// AdminRouteConfig holds dependencies for administrator routes.
type AdminRouteConfig struct {
	ComplaintHandler *complainthandlers.Handler
	AuthMiddleware   *middleware.AuthMiddleware
}

// SetupAdminRoutes configures routes reserved for administrator accounts.
func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	admin := engine.Group("/api/admin")
	admin.Use(cfg.AuthMiddleware.RequireAuth(), authorization.RequireAdmin())
	{
		admin.GET("/complaints", cfg.ComplaintHandler.ListAllComplaints)
		admin.PATCH("/complaints/:id", cfg.ComplaintHandler.UpdateComplaint)
	}
}
