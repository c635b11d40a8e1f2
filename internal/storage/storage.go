package storage

import (
	"context"
	"time"

	"jobtrack/internal/models"
	"jobtrack/internal/transport/dto"
)

// ApplicationRepository defines the interface for application data operations.
// The status log is append-only: events are inserted, never updated or
// removed.
type ApplicationRepository interface {
	// Create inserts the application row together with its initial Applied
	// event in one transaction, so no application ever exists with an empty
	// history.
	Create(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, *models.ApplicationStatus, error)
	AppendStatus(ctx context.Context, req *dto.AddStatusRequest) (*models.ApplicationStatus, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	// CountByOwner and ListByOwner share one predicate builder; the filters
	// applied by both are identical by construction.
	CountByOwner(ctx context.Context, ownerID int64, filter *dto.ApplicationFilter) (int64, error)
	ListByOwner(ctx context.Context, ownerID int64, filter *dto.ApplicationFilter, limit int, offset int64) ([]models.Application, error)
	// HistoryByApplicationIDs fetches the full event log for a page of
	// applications in one batched query, ordered by created_at ascending.
	HistoryByApplicationIDs(ctx context.Context, ids []int64) ([]models.ApplicationStatus, error)
	SoftDelete(ctx context.Context, req *dto.DeleteApplicationRequest) error
}

// DashboardRepository defines the read-only analytics queries. All of them
// are scoped to one owner, exclude soft-deleted applications and resolve
// "current status" with the same ordering as models.LatestStatus.
type DashboardRepository interface {
	StatusCounts(ctx context.Context, ownerID int64) (*dto.DashboardCountsResponse, error)
	SuccessRateCounts(ctx context.Context, ownerID int64) (successful int64, total int64, err error)
	StatusDistribution(ctx context.Context, ownerID int64) ([]dto.StatusCount, error)
	DailySeries(ctx context.Context, ownerID int64, from, to time.Time) ([]dto.DateCount, error)
	AverageResponseDays(ctx context.Context, ownerID int64, from, to time.Time) (*int64, error)
	RecentActivities(ctx context.Context, ownerID int64, limit int) ([]dto.RecentActivity, error)
}

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(ctx context.Context, req *dto.CreateUserRequest, passwordHash string) (*models.User, error)
	GetByID(ctx context.Context, req *dto.GetUserByIDRequest) (*models.User, error)
	GetByEmail(ctx context.Context, req *dto.GetUserByEmailRequest) (*models.User, error)
}

// TokenRepository defines the interface for the refresh-token store.
type TokenRepository interface {
	Save(ctx context.Context, tokenID string, userID int64, ttl time.Duration) error
	UserID(ctx context.Context, tokenID string) (int64, error)
	Delete(ctx context.Context, tokenID string) error
}
