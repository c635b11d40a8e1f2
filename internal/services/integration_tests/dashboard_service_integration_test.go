package integration_tests

import (
	"context"
	"testing"
	"time"

	"jobtrack/internal/models"
	"jobtrack/internal/services"
	"jobtrack/internal/storage/postgres"
	"jobtrack/internal/transport/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_Integration_StatusDistribution(t *testing.T) {
	pool := getTestPool(t)
	ctx := context.Background()
	defer cleanupTables(ctx, t, pool, "application_statuses", "applications", "users")

	user := createTestUser(t, ctx, pool, "dashboard-bar@example.com", "Dashboard Bar")
	svc := services.NewDashboardService(postgres.NewDashboardRepo(pool))

	// One application per scenario: stays Applied, moves to Interview, carries
	// a timestamp tie, and gets soft-deleted.
	createTestApplication(t, ctx, pool, user.ID, "StaysApplied Corp", "Backend Engineer")

	interviewing := createTestApplication(t, ctx, pool, user.ID, "Interviewing Inc", "Platform Engineer")
	insertStatusAt(t, ctx, pool, interviewing.ID, models.StatusInterview, user.ID, time.Now().Add(time.Minute))

	// Two events written with the exact same timestamp. The later insert has
	// the higher id and must win the tie, so this application counts under
	// OfferAwarded, not Test.
	tied := createTestApplication(t, ctx, pool, user.ID, "Tied Timestamps Ltd", "SRE")
	tieAt := time.Now().Add(time.Hour).Truncate(time.Microsecond)
	insertStatusAt(t, ctx, pool, tied.ID, models.StatusTest, user.ID, tieAt)
	insertStatusAt(t, ctx, pool, tied.ID, models.StatusOfferAwarded, user.ID, tieAt)

	deleted := createTestApplication(t, ctx, pool, user.ID, "Deleted GmbH", "Data Engineer")
	softDeleteApplication(t, ctx, pool, deleted.ID)

	resp, err := svc.Trends(ctx, user.ID, &dto.TrendsRequest{})
	require.NoError(t, err)
	require.NotNil(t, resp)

	require.Len(t, resp.BarData, 6, "bar data must carry one row per status, zeros included")

	counts := make(map[models.Status]int64, len(resp.BarData))
	for _, row := range resp.BarData {
		counts[row.Status] = row.Count
	}
	assert.Equal(t, int64(1), counts[models.StatusApplied])
	assert.Equal(t, int64(1), counts[models.StatusInterview])
	assert.Equal(t, int64(1), counts[models.StatusOfferAwarded], "same-timestamp tie must resolve to the later event")
	assert.Equal(t, int64(0), counts[models.StatusTest], "superseded tie event must not be counted")
	assert.Equal(t, int64(0), counts[models.StatusRejected])
	assert.Equal(t, int64(0), counts[models.StatusWithdrawn], "soft-deleted application must not surface anywhere")

	sum := int64(0)
	for _, c := range counts {
		sum += c
	}
	assert.Equal(t, int64(3), sum, "only live applications count")
}

func TestDashboardService_Integration_DailySeriesIsDense(t *testing.T) {
	pool := getTestPool(t)
	ctx := context.Background()
	defer cleanupTables(ctx, t, pool, "application_statuses", "applications", "users")

	user := createTestUser(t, ctx, pool, "dashboard-line@example.com", "Dashboard Line")
	svc := services.NewDashboardService(postgres.NewDashboardRepo(pool))

	createTestApplication(t, ctx, pool, user.ID, "Fresh Applied Co", "Go Developer")
	interviewing := createTestApplication(t, ctx, pool, user.ID, "Line Interview Co", "Staff Engineer")
	insertStatusAt(t, ctx, pool, interviewing.ID, models.StatusInterview, user.ID, time.Now().Add(time.Minute))

	from := time.Now().AddDate(0, 0, -2)
	to := time.Now()
	resp, err := svc.Trends(ctx, user.ID, &dto.TrendsRequest{From: &from, To: &to})
	require.NoError(t, err)
	require.NotNil(t, resp)

	// Three calendar days crossed with six statuses, zero-count rows included.
	require.Len(t, resp.LineData, 18, "line data must be a dense day-by-status grid")

	perStatusRows := make(map[models.Status]int)
	perStatusTotal := make(map[models.Status]int64)
	for _, row := range resp.LineData {
		perStatusRows[row.Status]++
		perStatusTotal[row.Status] += row.Count
	}
	for _, status := range models.AllStatuses {
		assert.Equal(t, 3, perStatusRows[status], "status %s must appear once per day in the window", status)
	}
	assert.Equal(t, int64(1), perStatusTotal[models.StatusApplied])
	assert.Equal(t, int64(1), perStatusTotal[models.StatusInterview])
	assert.Equal(t, int64(0), perStatusTotal[models.StatusRejected])

	// Both applications were created today, so every nonzero row sits on the
	// window's last day.
	lastDay := resp.LineData[len(resp.LineData)-1].Date
	for _, row := range resp.LineData {
		if row.Count > 0 {
			assert.Equal(t, lastDay, row.Date, "counts attach to the application's creation day")
		}
	}
}
