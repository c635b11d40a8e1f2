// Package mocks provides testify mocks for the storage interfaces.
package mocks

import (
	"context"
	"time"

	"jobtrack/internal/models"
	"jobtrack/internal/transport/dto"

	"github.com/stretchr/testify/mock"
)

// MockApplicationRepository is a mock of storage.ApplicationRepository.
type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) Create(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, *models.ApplicationStatus, error) {
	args := m.Called(ctx, req)
	var app *models.Application
	if v := args.Get(0); v != nil {
		app = v.(*models.Application)
	}
	var ev *models.ApplicationStatus
	if v := args.Get(1); v != nil {
		ev = v.(*models.ApplicationStatus)
	}
	return app, ev, args.Error(2)
}

func (m *MockApplicationRepository) AppendStatus(ctx context.Context, req *dto.AddStatusRequest) (*models.ApplicationStatus, error) {
	args := m.Called(ctx, req)
	var ev *models.ApplicationStatus
	if v := args.Get(0); v != nil {
		ev = v.(*models.ApplicationStatus)
	}
	return ev, args.Error(1)
}

func (m *MockApplicationRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockApplicationRepository) CountByOwner(ctx context.Context, ownerID int64, filter *dto.ApplicationFilter) (int64, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockApplicationRepository) ListByOwner(ctx context.Context, ownerID int64, filter *dto.ApplicationFilter, limit int, offset int64) ([]models.Application, error) {
	args := m.Called(ctx, ownerID, filter, limit, offset)
	var apps []models.Application
	if v := args.Get(0); v != nil {
		apps = v.([]models.Application)
	}
	return apps, args.Error(1)
}

func (m *MockApplicationRepository) HistoryByApplicationIDs(ctx context.Context, ids []int64) ([]models.ApplicationStatus, error) {
	args := m.Called(ctx, ids)
	var events []models.ApplicationStatus
	if v := args.Get(0); v != nil {
		events = v.([]models.ApplicationStatus)
	}
	return events, args.Error(1)
}

func (m *MockApplicationRepository) SoftDelete(ctx context.Context, req *dto.DeleteApplicationRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

// MockDashboardRepository is a mock of storage.DashboardRepository.
type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) StatusCounts(ctx context.Context, ownerID int64) (*dto.DashboardCountsResponse, error) {
	args := m.Called(ctx, ownerID)
	var counts *dto.DashboardCountsResponse
	if v := args.Get(0); v != nil {
		counts = v.(*dto.DashboardCountsResponse)
	}
	return counts, args.Error(1)
}

func (m *MockDashboardRepository) SuccessRateCounts(ctx context.Context, ownerID int64) (int64, int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

func (m *MockDashboardRepository) StatusDistribution(ctx context.Context, ownerID int64) ([]dto.StatusCount, error) {
	args := m.Called(ctx, ownerID)
	var counts []dto.StatusCount
	if v := args.Get(0); v != nil {
		counts = v.([]dto.StatusCount)
	}
	return counts, args.Error(1)
}

func (m *MockDashboardRepository) DailySeries(ctx context.Context, ownerID int64, from, to time.Time) ([]dto.DateCount, error) {
	args := m.Called(ctx, ownerID, from, to)
	var series []dto.DateCount
	if v := args.Get(0); v != nil {
		series = v.([]dto.DateCount)
	}
	return series, args.Error(1)
}

func (m *MockDashboardRepository) AverageResponseDays(ctx context.Context, ownerID int64, from, to time.Time) (*int64, error) {
	args := m.Called(ctx, ownerID, from, to)
	var days *int64
	if v := args.Get(0); v != nil {
		days = v.(*int64)
	}
	return days, args.Error(1)
}

func (m *MockDashboardRepository) RecentActivities(ctx context.Context, ownerID int64, limit int) ([]dto.RecentActivity, error) {
	args := m.Called(ctx, ownerID, limit)
	var activities []dto.RecentActivity
	if v := args.Get(0); v != nil {
		activities = v.([]dto.RecentActivity)
	}
	return activities, args.Error(1)
}

// MockUserRepository is a mock of storage.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, req *dto.CreateUserRequest, passwordHash string) (*models.User, error) {
	args := m.Called(ctx, req, passwordHash)
	var user *models.User
	if v := args.Get(0); v != nil {
		user = v.(*models.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, req *dto.GetUserByIDRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	var user *models.User
	if v := args.Get(0); v != nil {
		user = v.(*models.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, req *dto.GetUserByEmailRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	var user *models.User
	if v := args.Get(0); v != nil {
		user = v.(*models.User)
	}
	return user, args.Error(1)
}

// MockTokenRepository is a mock of storage.TokenRepository.
type MockTokenRepository struct {
	mock.Mock
}

func (m *MockTokenRepository) Save(ctx context.Context, tokenID string, userID int64, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, userID, ttl)
	return args.Error(0)
}

func (m *MockTokenRepository) UserID(ctx context.Context, tokenID string) (int64, error) {
	args := m.Called(ctx, tokenID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTokenRepository) Delete(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}
