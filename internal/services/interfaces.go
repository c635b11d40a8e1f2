package services

import (
	"context"

	"jobtrack/internal/models"
	"jobtrack/internal/transport/dto"
)

// ApplicationService defines the interface for application-related business
// logic.
type ApplicationService interface {
	Create(ctx context.Context, req *dto.CreateApplicationRequest) (*dto.ApplicationResponse, error)
	AddStatus(ctx context.Context, req *dto.AddStatusRequest) (*dto.StatusEventResponse, error)
	List(ctx context.Context, ownerID int64, filter *dto.ApplicationFilter) (*dto.PaginatedApplicationsResponse, error)
	Delete(ctx context.Context, req *dto.DeleteApplicationRequest) error
}

// DashboardService defines the interface for the read-only analytics surface.
// None of its operations fail on missing data; they return zeroed or "N/A"
// results instead.
type DashboardService interface {
	Counts(ctx context.Context, ownerID int64) (*dto.DashboardCountsResponse, error)
	SuccessRate(ctx context.Context, ownerID int64) (*dto.SuccessRateResponse, error)
	Trends(ctx context.Context, ownerID int64, req *dto.TrendsRequest) (*dto.TrendsResponse, error)
	AverageResponseTime(ctx context.Context, ownerID int64) (*dto.AverageResponseTimeResponse, error)
	RecentActivities(ctx context.Context, ownerID int64) (*dto.RecentActivitiesResponse, error)
}

// UserService defines the interface for user-related business logic.
type UserService interface {
	Register(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*models.User, *dto.AuthResponse, error)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.AuthResponse, error)
	Logout(ctx context.Context, req *dto.LogoutRequest) error
	GetByID(ctx context.Context, req *dto.GetUserByIDRequest) (*models.User, error)
}
