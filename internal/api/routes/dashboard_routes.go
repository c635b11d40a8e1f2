package routes

import (
	"jobtrack/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterDashboardRoutes registers all routes related to the analytics dashboard
func RegisterDashboardRoutes(rg *gin.RouterGroup, dashHandler *handlers.DashboardHandler, authMiddleware gin.HandlerFunc) {
	dashboard := rg.Group("/dashboard")
	dashboard.Use(authMiddleware)
	{
		dashboard.GET("/counts", dashHandler.Counts)
		dashboard.GET("/success-rate", dashHandler.SuccessRate)
		dashboard.GET("/trends", dashHandler.Trends)
		dashboard.GET("/average-response-time", dashHandler.AverageResponseTime)
		dashboard.GET("/recent-activities", dashHandler.RecentActivities)
	}
}
