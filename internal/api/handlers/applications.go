package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"jobtrack/internal/api/middleware"
	"jobtrack/internal/services"
	"jobtrack/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ApplicationHandler holds the service dependency for application operations
type ApplicationHandler struct {
	service   services.ApplicationService
	validator *validator.Validate
}

// NewApplicationHandler creates a new ApplicationHandler with the given service
func NewApplicationHandler(service services.ApplicationService, validate *validator.Validate) *ApplicationHandler {
	return &ApplicationHandler{service: service, validator: validate}
}

// CreateApplication godoc
// @Summary      Submit a new application
// @Description  Creates an application and records its initial Applied status event.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        application body      dto.CreateApplicationRequest true "Application to create"
// @Success      201  {object}  dto.ApplicationResponse "Application created successfully"
// @Failure      400  {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401  {object}  map[string]string "Unauthorized"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Security     BearerAuth
// @Router       /applications [post]
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req dto.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.CreatedBy = userID

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		log.Printf("Error creating application for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create application"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// AddStatus godoc
// @Summary      Append a status event
// @Description  Appends one immutable status event to an application's history.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id     path      int                  true "Application ID"
// @Param        status body      dto.AddStatusRequest true "Status event to append"
// @Success      201  {object}  dto.StatusEventResponse "Status event recorded"
// @Failure      400  {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401  {object}  map[string]string "Unauthorized"
// @Failure      404  {object}  map[string]string "Application Not Found"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Security     BearerAuth
// @Router       /applications/{id}/statuses [post]
func (h *ApplicationHandler) AddStatus(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	appID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application id"})
		return
	}

	var req dto.AddStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ApplicationID = appID
	req.CreatedBy = userID

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	ev, err := h.service.AddStatus(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		default:
			log.Printf("Error appending status to application %d: %v", appID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record status"})
		}
		return
	}

	c.JSON(http.StatusCreated, ev)
}

// ListApplications godoc
// @Summary      List applications
// @Description  Returns one filtered, paginated page of the caller's applications with full status history and derived current status.
// @Tags         applications
// @Produce      json
// @Param        search query     string  false "Substring match on company, position or website"
// @Param        status query     string  false "Filter by current status" Enums(Applied, Test, Interview, OfferAwarded, Rejected, Withdrawn)
// @Param        from   query     string  false "Inclusive lower bound on submission time (RFC 3339)"
// @Param        to     query     string  false "Inclusive upper bound on submission time (RFC 3339)"
// @Param        page   query     int     false "Page number (1-based, default 1)"
// @Param        size   query     int     false "Page size (default 20)"
// @Success      200  {object}  dto.PaginatedApplicationsResponse "Page of applications"
// @Failure      400  {object}  map[string]string "Bad Request - Invalid filters"
// @Failure      401  {object}  map[string]string "Unauthorized"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Security     BearerAuth
// @Router       /applications [get]
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var filter dto.ApplicationFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	if err := h.validator.Struct(filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	page, err := h.service.List(c.Request.Context(), userID, &filter)
	if err != nil {
		log.Printf("Error listing applications for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve applications"})
		return
	}

	c.JSON(http.StatusOK, page)
}

// DeleteApplication godoc
// @Summary      Delete an application
// @Description  Soft-deletes one of the caller's applications. The status history is preserved.
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true "Application ID"
// @Success      204  {object}  nil "Application deleted"
// @Failure      400  {object}  map[string]string "Bad Request - Invalid id"
// @Failure      401  {object}  map[string]string "Unauthorized"
// @Failure      404  {object}  map[string]string "Application Not Found"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Security     BearerAuth
// @Router       /applications/{id} [delete]
func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	appID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application id"})
		return
	}

	req := dto.DeleteApplicationRequest{ID: appID, CreatedBy: userID}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	if err := h.service.Delete(c.Request.Context(), &req); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		} else {
			log.Printf("Error deleting application %d: %v", appID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete application"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
