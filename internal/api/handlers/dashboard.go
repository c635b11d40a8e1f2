package handlers

import (
	"log"
	"net/http"

	"jobtrack/internal/api/middleware"
	"jobtrack/internal/services"
	"jobtrack/internal/transport/dto"

	"github.com/gin-gonic/gin"
)

// DashboardHandler holds the service dependency for the analytics endpoints
type DashboardHandler struct {
	service services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler with the given service
func NewDashboardHandler(service services.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Counts godoc
// @Summary      Status counts
// @Description  Buckets the caller's applications by current status.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardCountsResponse "Counts per status bucket"
// @Failure      401  {object}  map[string]string "Unauthorized"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Security     BearerAuth
// @Router       /dashboard/counts [get]
func (h *DashboardHandler) Counts(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	counts, err := h.service.Counts(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error computing dashboard counts for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute counts"})
		return
	}

	c.JSON(http.StatusOK, counts)
}

// SuccessRate godoc
// @Summary      Success rate
// @Description  Share of the last 30 applications currently in Test, Interview or OfferAwarded.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.SuccessRateResponse "Formatted success rate"
// @Failure      401  {object}  map[string]string "Unauthorized"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Security     BearerAuth
// @Router       /dashboard/success-rate [get]
func (h *DashboardHandler) SuccessRate(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	rate, err := h.service.SuccessRate(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error computing success rate for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute success rate"})
		return
	}

	c.JSON(http.StatusOK, rate)
}

// Trends godoc
// @Summary      Trend series
// @Description  Status-distribution bar series plus a dense per-day, per-status line series for the requested window.
// @Tags         dashboard
// @Produce      json
// @Param        from query     string false "Window start (RFC 3339, defaults to start of current month)"
// @Param        to   query     string false "Window end (RFC 3339, defaults to now)"
// @Success      200  {object}  dto.TrendsResponse "Bar and line series"
// @Failure      400  {object}  map[string]string "Bad Request - Invalid window"
// @Failure      401  {object}  map[string]string "Unauthorized"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Security     BearerAuth
// @Router       /dashboard/trends [get]
func (h *DashboardHandler) Trends(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req dto.TrendsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	trends, err := h.service.Trends(c.Request.Context(), userID, &req)
	if err != nil {
		log.Printf("Error computing trends for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute trends"})
		return
	}

	c.JSON(http.StatusOK, trends)
}

// AverageResponseTime godoc
// @Summary      Average response time
// @Description  Average days from Applied to first Test or Interview this month, compared with last month.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.AverageResponseTimeResponse "Formatted latency comparison"
// @Failure      401  {object}  map[string]string "Unauthorized"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Security     BearerAuth
// @Router       /dashboard/average-response-time [get]
func (h *DashboardHandler) AverageResponseTime(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	avg, err := h.service.AverageResponseTime(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error computing average response time for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute average response time"})
		return
	}

	c.JSON(http.StatusOK, avg)
}

// RecentActivities godoc
// @Summary      Recent activity feed
// @Description  Merged feed of newest applications and newest status transitions.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.RecentActivitiesResponse "Recent activity entries"
// @Failure      401  {object}  map[string]string "Unauthorized"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Security     BearerAuth
// @Router       /dashboard/recent-activities [get]
func (h *DashboardHandler) RecentActivities(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	feed, err := h.service.RecentActivities(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error fetching recent activities for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve recent activities"})
		return
	}

	c.JSON(http.StatusOK, feed)
}
