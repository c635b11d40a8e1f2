package services

import (
	"context"
	"fmt"
	"log"

	"jobtrack/internal/models"
	"jobtrack/internal/storage"
	"jobtrack/internal/transport/dto"
)

type applicationService struct {
	appRepo storage.ApplicationRepository
}

// NewApplicationService creates a new instance of ApplicationService.
func NewApplicationService(appRepo storage.ApplicationRepository) ApplicationService {
	return &applicationService{appRepo: appRepo}
}

// Create submits a new application. The repository inserts the row and its
// initial Applied event in one transaction, so the returned history always
// has exactly one entry.
func (s *applicationService) Create(ctx context.Context, req *dto.CreateApplicationRequest) (*dto.ApplicationResponse, error) {
	app, initial, err := s.appRepo.Create(ctx, req)
	if err != nil {
		log.Printf("ApplicationService: Error creating application: %v", err)
		return nil, MapRepoError(err, "creating application")
	}

	return &dto.ApplicationResponse{
		ID:            app.ID,
		Company:       app.Company,
		Position:      app.Position,
		Website:       app.Website,
		Channel:       app.Channel,
		CreatedBy:     app.CreatedBy,
		CreatedAt:     app.CreatedAt,
		CurrentStatus: initial.StatusType,
		StatusHistory: []dto.StatusEventResponse{dto.MapStatusEventToResponse(initial)},
	}, nil
}

// AddStatus appends one event to an application's history after cross-field
// checks: a test type only accompanies a Test event, an interview type only
// an Interview event.
func (s *applicationService) AddStatus(ctx context.Context, req *dto.AddStatusRequest) (*dto.StatusEventResponse, error) {
	if req.TestType != nil && req.StatusType != models.StatusTest {
		return nil, fmt.Errorf("%w: test_type is only valid when status_type is Test", ErrValidation)
	}
	if req.InterviewType != nil && req.StatusType != models.StatusInterview {
		return nil, fmt.Errorf("%w: interview_type is only valid when status_type is Interview", ErrValidation)
	}

	exists, err := s.appRepo.ExistsByID(ctx, req.ApplicationID)
	if err != nil {
		log.Printf("ApplicationService: Error checking application %d: %v", req.ApplicationID, err)
		return nil, MapRepoError(err, "checking application for status append")
	}
	if !exists {
		return nil, fmt.Errorf("%w: application %d", ErrNotFound, req.ApplicationID)
	}

	ev, err := s.appRepo.AppendStatus(ctx, req)
	if err != nil {
		log.Printf("ApplicationService: Error appending status to application %d: %v", req.ApplicationID, err)
		return nil, MapRepoError(err, "appending status")
	}

	resp := dto.MapStatusEventToResponse(ev)
	return &resp, nil
}

// List returns one filtered, paginated page of the owner's applications with
// their full histories and derived current status. The count and page
// queries share one predicate builder, so the envelope totals always match
// the filter.
func (s *applicationService) List(ctx context.Context, ownerID int64, filter *dto.ApplicationFilter) (*dto.PaginatedApplicationsResponse, error) {
	total, err := s.appRepo.CountByOwner(ctx, ownerID, filter)
	if err != nil {
		log.Printf("ApplicationService: Error counting applications for user %d: %v", ownerID, err)
		return nil, MapRepoError(err, "counting applications")
	}

	var pageIn, sizeIn *int
	if filter != nil {
		pageIn, sizeIn = filter.Page, filter.Size
	}
	page, size, offset, totalPages := dto.ComputePagination(pageIn, sizeIn, total)

	apps, err := s.appRepo.ListByOwner(ctx, ownerID, filter, size, offset)
	if err != nil {
		log.Printf("ApplicationService: Error listing applications for user %d: %v", ownerID, err)
		return nil, MapRepoError(err, "listing applications")
	}

	ids := make([]int64, 0, len(apps))
	for _, app := range apps {
		ids = append(ids, app.ID)
	}

	events, err := s.appRepo.HistoryByApplicationIDs(ctx, ids)
	if err != nil {
		log.Printf("ApplicationService: Error fetching status histories for user %d: %v", ownerID, err)
		return nil, MapRepoError(err, "fetching status histories")
	}

	return &dto.PaginatedApplicationsResponse{
		Items:      assembleApplications(apps, events),
		TotalItems: total,
		Page:       page,
		PageSize:   size,
		TotalPages: totalPages,
	}, nil
}

// Delete soft-deletes an owner's application. The status log stays intact.
func (s *applicationService) Delete(ctx context.Context, req *dto.DeleteApplicationRequest) error {
	if err := s.appRepo.SoftDelete(ctx, req); err != nil {
		log.Printf("ApplicationService: Error deleting application %d: %v", req.ID, err)
		return MapRepoError(err, "deleting application")
	}
	return nil
}
