// internal/transport/dto/application_dto.go
package dto

import (
	"time"

	"jobtrack/internal/models"
)

// --- Application Request DTOs ---

// CreateApplicationRequest defines the structure for submitting a new
// application. The owner is taken from the auth context, never from the body.
type CreateApplicationRequest struct {
	Company   string         `json:"company" validate:"required,min=1"`
	Position  string         `json:"position" validate:"required,min=1"`
	Website   *string        `json:"website,omitempty" validate:"omitempty,url"`
	Channel   models.Channel `json:"channel" validate:"required,oneof=Email Website"`
	CreatedBy int64          `json:"-"` // Set internally by handler from auth context
}

// AddStatusRequest defines the structure for appending one status event to an
// application's history. Events are immutable once written.
type AddStatusRequest struct {
	ApplicationID int64                 `json:"-" validate:"required"` // From URL path
	StatusType    models.Status         `json:"status_type" validate:"required,oneof=Applied Test Interview OfferAwarded Rejected Withdrawn"`
	TestType      *models.TestType      `json:"test_type,omitempty" validate:"omitempty,oneof=Technical English Aptitude Other"`
	InterviewType *models.InterviewType `json:"interview_type,omitempty" validate:"omitempty,oneof=Hr Behavioural Technical Other"`
	Notes         *string               `json:"notes,omitempty"`
	CreatedBy     int64                 `json:"-"` // Acting user, set by handler
}

// ApplicationFilter defines the optional listing filters. All fields are
// independently composable; absent bounds stay unconstrained.
type ApplicationFilter struct {
	Search *string        `form:"search"`
	Status *models.Status `form:"status" validate:"omitempty,oneof=Applied Test Interview OfferAwarded Rejected Withdrawn"`
	From   *time.Time     `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To     *time.Time     `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
	Page   *int           `form:"page"`
	Size   *int           `form:"size"`
}

// DeleteApplicationRequest defines the structure for soft-deleting an
// application.
type DeleteApplicationRequest struct {
	ID        int64 `json:"-" validate:"required"`
	CreatedBy int64 `json:"-"`
}

// --- Application Response DTOs ---

// StatusEventResponse is one history entry returned to the client.
type StatusEventResponse struct {
	ID            int64                 `json:"id"`
	ApplicationID int64                 `json:"application_id"`
	StatusType    models.Status         `json:"status_type"`
	TestType      *models.TestType      `json:"test_type,omitempty"`
	InterviewType *models.InterviewType `json:"interview_type,omitempty"`
	Notes         *string               `json:"notes,omitempty"`
	CreatedBy     int64                 `json:"created_by"`
	CreatedAt     time.Time             `json:"created_at"`
}

// ApplicationResponse carries one application together with its full ordered
// history and the derived current status.
type ApplicationResponse struct {
	ID            int64                 `json:"id"`
	Company       string                `json:"company"`
	Position      string                `json:"position"`
	Website       *string               `json:"website,omitempty"`
	Channel       models.Channel        `json:"channel"`
	CreatedBy     int64                 `json:"created_by"`
	CreatedAt     time.Time             `json:"created_at"`
	CurrentStatus models.Status         `json:"currentStatus"`
	StatusHistory []StatusEventResponse `json:"statusHistory"`
}

// MapStatusEventToResponse converts a models.ApplicationStatus to a
// StatusEventResponse.
func MapStatusEventToResponse(ev *models.ApplicationStatus) StatusEventResponse {
	return StatusEventResponse{
		ID:            ev.ID,
		ApplicationID: ev.ApplicationID,
		StatusType:    ev.StatusType,
		TestType:      ev.TestType,
		InterviewType: ev.InterviewType,
		Notes:         ev.Notes,
		CreatedBy:     ev.CreatedBy,
		CreatedAt:     ev.CreatedAt,
	}
}
