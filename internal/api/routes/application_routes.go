package routes

import (
	"jobtrack/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterApplicationRoutes registers all routes related to applications
func RegisterApplicationRoutes(rg *gin.RouterGroup, appHandler *handlers.ApplicationHandler, authMiddleware gin.HandlerFunc) {
	apps := rg.Group("/applications")
	apps.Use(authMiddleware)
	{
		apps.POST("", appHandler.CreateApplication)
		apps.GET("", appHandler.ListApplications)
		apps.POST("/:id/statuses", appHandler.AddStatus)
		apps.DELETE("/:id", appHandler.DeleteApplication)
	}
}
