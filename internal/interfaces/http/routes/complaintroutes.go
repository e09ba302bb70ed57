package routes

import (
	"github.com/gin-gonic/gin"

	complainthandlers "ecomplaint/internal/interfaces/http/handlers/complaint"
	"ecomplaint/internal/interfaces/http/middleware"
)

// ComplaintRouteConfig holds dependencies for citizen-facing complaint routes.
type ComplaintRouteConfig struct {
	ComplaintHandler *complainthandlers.Handler
	AuthMiddleware   *middleware.AuthMiddleware
}

// SetupComplaintRoutes configures the authenticated complaint and dashboard
// routes.
func SetupComplaintRoutes(engine *gin.Engine, cfg *ComplaintRouteConfig) {
	engine.GET("/api/dashboard", cfg.AuthMiddleware.RequireAuth(), cfg.ComplaintHandler.Dashboard)

	complaints := engine.Group("/api/complaints")
	complaints.Use(cfg.AuthMiddleware.RequireAuth())
	{
		complaints.POST("", cfg.ComplaintHandler.FileComplaint)
		complaints.GET("", cfg.ComplaintHandler.ListMyComplaints)

		// Specific paths before parameterized ones to avoid route conflicts
		complaints.GET("/:id/evidence", cfg.ComplaintHandler.DownloadEvidence)
		complaints.GET("/:id", cfg.ComplaintHandler.GetComplaint)
	}
}
