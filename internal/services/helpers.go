package services

import (
	"errors"
	"fmt"
	"log"

	"jobtrack/internal/models"
	"jobtrack/internal/storage"
	"jobtrack/internal/transport/dto"
)

// MapRepoError maps storage errors to service errors
func MapRepoError(err error, operation string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, operation)
	}
	if errors.Is(err, storage.ErrConflict) {
		return fmt.Errorf("%w: %s (%v)", ErrConflict, operation, err)
	}
	if errors.Is(err, storage.ErrDuplicateEmail) {
		return fmt.Errorf("%w: %s (duplicate email)", ErrConflict, operation)
	}
	// Log other unexpected errors
	log.Printf("Unexpected repository error during %s: %v", operation, err)
	return fmt.Errorf("internal error during %s: %w", operation, err)
}

// assembleApplications joins one page of applications with their status
// events. Events arrive ordered by created_at ascending from the batched
// history query; buckets preserve that order. Page order is preserved as-is.
//
// An application with an empty event bucket violates the at-least-one-event
// invariant: it is excluded from the result with a logged diagnostic rather
// than failing the whole page.
func assembleApplications(apps []models.Application, events []models.ApplicationStatus) []dto.ApplicationResponse {
	histories := make(map[int64][]models.ApplicationStatus, len(apps))
	for _, ev := range events {
		histories[ev.ApplicationID] = append(histories[ev.ApplicationID], ev)
	}

	items := make([]dto.ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		history := histories[app.ID]
		current, err := models.LatestStatus(history)
		if err != nil {
			log.Printf("Consistency violation: application %d has no status events, excluding from listing: %v", app.ID, err)
			continue
		}

		statusHistory := make([]dto.StatusEventResponse, 0, len(history))
		for i := range history {
			statusHistory = append(statusHistory, dto.MapStatusEventToResponse(&history[i]))
		}

		items = append(items, dto.ApplicationResponse{
			ID:            app.ID,
			Company:       app.Company,
			Position:      app.Position,
			Website:       app.Website,
			Channel:       app.Channel,
			CreatedBy:     app.CreatedBy,
			CreatedAt:     app.CreatedAt,
			CurrentStatus: current,
			StatusHistory: statusHistory,
		})
	}

	return items
}

// MapUserToResponse converts a models.User to a dto.UserResponse.
func MapUserToResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
