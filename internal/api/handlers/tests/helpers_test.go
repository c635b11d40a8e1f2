package handlers_test

import (
	"context"
	"strconv"
	"time"

	"jobtrack/internal/services"
	"jobtrack/internal/transport/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
)

func generateTestToken(userID int64, secret string, expiration time.Duration) (string, error) {
	expirationTime := time.Now().Add(expiration)
	claims := &jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(expirationTime),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// MockApplicationService is a mock implementation of services.ApplicationService
type MockApplicationService struct {
	mock.Mock
}

func (m *MockApplicationService) Create(ctx context.Context, req *dto.CreateApplicationRequest) (*dto.ApplicationResponse, error) {
	args := m.Called(ctx, req)
	var resp *dto.ApplicationResponse
	if v := args.Get(0); v != nil {
		resp = v.(*dto.ApplicationResponse)
	}
	return resp, args.Error(1)
}

func (m *MockApplicationService) AddStatus(ctx context.Context, req *dto.AddStatusRequest) (*dto.StatusEventResponse, error) {
	args := m.Called(ctx, req)
	var resp *dto.StatusEventResponse
	if v := args.Get(0); v != nil {
		resp = v.(*dto.StatusEventResponse)
	}
	return resp, args.Error(1)
}

func (m *MockApplicationService) List(ctx context.Context, ownerID int64, filter *dto.ApplicationFilter) (*dto.PaginatedApplicationsResponse, error) {
	args := m.Called(ctx, ownerID, filter)
	var resp *dto.PaginatedApplicationsResponse
	if v := args.Get(0); v != nil {
		resp = v.(*dto.PaginatedApplicationsResponse)
	}
	return resp, args.Error(1)
}

func (m *MockApplicationService) Delete(ctx context.Context, req *dto.DeleteApplicationRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

// Compile-time check
var _ services.ApplicationService = (*MockApplicationService)(nil)
