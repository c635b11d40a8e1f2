package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"jobtrack/internal/mocks"
	"jobtrack/internal/models"
	"jobtrack/internal/services"
	"jobtrack/internal/storage"
	"jobtrack/internal/transport/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupApplicationServiceTest(t *testing.T) (context.Context, services.ApplicationService, *mocks.MockApplicationRepository) {
	t.Helper()
	repo := new(mocks.MockApplicationRepository)
	svc := services.NewApplicationService(repo)
	return context.Background(), svc, repo
}

func testTypePtr(v models.TestType) *models.TestType { return &v }

func interviewTypePtr(v models.InterviewType) *models.InterviewType { return &v }

func intPtr(v int) *int { return &v }

func TestApplicationService_Create(t *testing.T) {
	ctx, svc, repo := setupApplicationServiceTest(t)

	now := time.Date(2026, time.August, 25, 10, 0, 0, 0, time.UTC)
	req := &dto.CreateApplicationRequest{
		Company:   "Acme",
		Position:  "Engineer",
		Channel:   models.ChannelEmail,
		CreatedBy: 7,
	}
	app := &models.Application{
		ID: 1, Company: "Acme", Position: "Engineer",
		Channel: models.ChannelEmail, CreatedBy: 7, CreatedAt: now,
	}
	initial := &models.ApplicationStatus{
		ID: 10, ApplicationID: 1, StatusType: models.StatusApplied,
		CreatedBy: 7, CreatedAt: now,
	}

	repo.On("Create", ctx, req).Return(app, initial, nil)

	resp, err := svc.Create(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, models.StatusApplied, resp.CurrentStatus)
	require.Len(t, resp.StatusHistory, 1)
	assert.Equal(t, models.StatusApplied, resp.StatusHistory[0].StatusType)
	repo.AssertExpectations(t)
}

func TestApplicationService_Create_RepoError(t *testing.T) {
	ctx, svc, repo := setupApplicationServiceTest(t)

	repo.On("Create", ctx, mock.Anything).Return(nil, nil, errors.New("db down"))

	_, err := svc.Create(ctx, &dto.CreateApplicationRequest{Company: "Acme"})

	assert.Error(t, err)
}

func TestApplicationService_AddStatus(t *testing.T) {
	tests := []struct {
		name        string
		req         *dto.AddStatusRequest
		exists      bool
		existsErr   error
		appendRes   *models.ApplicationStatus
		appendErr   error
		expectedErr error
		skipExists  bool
		skipAppend  bool
	}{
		{
			name: "Success",
			req: &dto.AddStatusRequest{
				ApplicationID: 1,
				StatusType:    models.StatusInterview,
				InterviewType: interviewTypePtr(models.InterviewTypeTechnical),
				CreatedBy:     7,
			},
			exists:    true,
			appendRes: &models.ApplicationStatus{ID: 11, ApplicationID: 1, StatusType: models.StatusInterview},
		},
		{
			name: "TestTypeOnNonTestStatus",
			req: &dto.AddStatusRequest{
				ApplicationID: 1,
				StatusType:    models.StatusInterview,
				TestType:      testTypePtr(models.TestTypeTechnical),
			},
			expectedErr: services.ErrValidation,
			skipExists:  true,
			skipAppend:  true,
		},
		{
			name: "InterviewTypeOnNonInterviewStatus",
			req: &dto.AddStatusRequest{
				ApplicationID: 1,
				StatusType:    models.StatusRejected,
				InterviewType: interviewTypePtr(models.InterviewTypeHr),
			},
			expectedErr: services.ErrValidation,
			skipExists:  true,
			skipAppend:  true,
		},
		{
			name: "ApplicationNotFound",
			req: &dto.AddStatusRequest{
				ApplicationID: 99,
				StatusType:    models.StatusRejected,
			},
			exists:      false,
			expectedErr: services.ErrNotFound,
			skipAppend:  true,
		},
		{
			name: "AppendRacesWithDelete",
			req: &dto.AddStatusRequest{
				ApplicationID: 1,
				StatusType:    models.StatusWithdrawn,
			},
			exists:      true,
			appendErr:   storage.ErrNotFound,
			expectedErr: services.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, svc, repo := setupApplicationServiceTest(t)

			if !tt.skipExists {
				repo.On("ExistsByID", ctx, tt.req.ApplicationID).Return(tt.exists, tt.existsErr)
			}
			if !tt.skipAppend {
				repo.On("AppendStatus", ctx, tt.req).Return(tt.appendRes, tt.appendErr)
			}

			ev, err := svc.AddStatus(ctx, tt.req)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.appendRes.ID, ev.ID)
				assert.Equal(t, tt.appendRes.StatusType, ev.StatusType)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestApplicationService_List(t *testing.T) {
	ctx, svc, repo := setupApplicationServiceTest(t)

	now := time.Date(2026, time.August, 20, 9, 0, 0, 0, time.UTC)
	filter := &dto.ApplicationFilter{Page: intPtr(2), Size: intPtr(10)}

	apps := []models.Application{
		{ID: 1, Company: "Acme", CreatedBy: 7, CreatedAt: now},
	}
	events := []models.ApplicationStatus{
		{ID: 10, ApplicationID: 1, StatusType: models.StatusApplied, CreatedAt: now},
		{ID: 11, ApplicationID: 1, StatusType: models.StatusTest, CreatedAt: now.Add(time.Hour)},
	}

	repo.On("CountByOwner", ctx, int64(7), filter).Return(int64(25), nil)
	repo.On("ListByOwner", ctx, int64(7), filter, 10, int64(10)).Return(apps, nil)
	repo.On("HistoryByApplicationIDs", ctx, []int64{1}).Return(events, nil)

	page, err := svc.List(ctx, 7, filter)

	require.NoError(t, err)
	assert.Equal(t, int64(25), page.TotalItems)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 10, page.PageSize)
	assert.Equal(t, int64(3), page.TotalPages)
	require.Len(t, page.Items, 1)
	assert.Equal(t, models.StatusTest, page.Items[0].CurrentStatus)
	assert.Len(t, page.Items[0].StatusHistory, 2)
	repo.AssertExpectations(t)
}

func TestApplicationService_List_EmptyPage(t *testing.T) {
	ctx, svc, repo := setupApplicationServiceTest(t)

	repo.On("CountByOwner", ctx, int64(7), mock.Anything).Return(int64(0), nil)
	repo.On("ListByOwner", ctx, int64(7), mock.Anything, 20, int64(0)).Return([]models.Application{}, nil)
	repo.On("HistoryByApplicationIDs", ctx, []int64{}).Return([]models.ApplicationStatus{}, nil)

	page, err := svc.List(ctx, 7, &dto.ApplicationFilter{})

	require.NoError(t, err)
	assert.Equal(t, int64(0), page.TotalItems)
	assert.Equal(t, int64(0), page.TotalPages)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
}

func TestApplicationService_Delete(t *testing.T) {
	ctx, svc, repo := setupApplicationServiceTest(t)

	req := &dto.DeleteApplicationRequest{ID: 1, CreatedBy: 7}
	repo.On("SoftDelete", ctx, req).Return(nil)

	require.NoError(t, svc.Delete(ctx, req))
	repo.AssertExpectations(t)
}

func TestApplicationService_Delete_NotFound(t *testing.T) {
	ctx, svc, repo := setupApplicationServiceTest(t)

	req := &dto.DeleteApplicationRequest{ID: 99, CreatedBy: 7}
	repo.On("SoftDelete", ctx, req).Return(storage.ErrNotFound)

	err := svc.Delete(ctx, req)

	assert.ErrorIs(t, err, services.ErrNotFound)
}
