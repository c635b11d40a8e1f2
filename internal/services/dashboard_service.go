package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"jobtrack/internal/storage"
	"jobtrack/internal/transport/dto"
)

// recentActivityLimit bounds the merged activity feed.
const recentActivityLimit = 6

const successRateCaption = "based on last 30 applications"

type dashboardService struct {
	repo storage.DashboardRepository
	now  func() time.Time
}

// NewDashboardService creates a new instance of DashboardService.
func NewDashboardService(repo storage.DashboardRepository) DashboardService {
	return &dashboardService{repo: repo, now: time.Now}
}

// Counts buckets the user's applications by current status.
func (s *dashboardService) Counts(ctx context.Context, ownerID int64) (*dto.DashboardCountsResponse, error) {
	counts, err := s.repo.StatusCounts(ctx, ownerID)
	if err != nil {
		log.Printf("DashboardService: Error computing counts for user %d: %v", ownerID, err)
		return nil, MapRepoError(err, "computing dashboard counts")
	}
	return counts, nil
}

// SuccessRate reports the share of the last 30 applications whose current
// status is OfferAwarded, Interview or Test. With no qualifying
// applications, it reports "0.00%" instead of dividing by zero.
func (s *dashboardService) SuccessRate(ctx context.Context, ownerID int64) (*dto.SuccessRateResponse, error) {
	successful, total, err := s.repo.SuccessRateCounts(ctx, ownerID)
	if err != nil {
		log.Printf("DashboardService: Error computing success rate for user %d: %v", ownerID, err)
		return nil, MapRepoError(err, "computing success rate")
	}

	return &dto.SuccessRateResponse{
		Percentage: formatSuccessRate(successful, total),
		Message:    successRateCaption,
	}, nil
}

// Trends returns the status-distribution bar series and the dense per-day,
// per-status line series. An unspecified window defaults to the start of the
// current calendar month through now.
func (s *dashboardService) Trends(ctx context.Context, ownerID int64, req *dto.TrendsRequest) (*dto.TrendsResponse, error) {
	now := s.now()
	from := monthStart(now)
	to := now
	if req != nil {
		if req.From != nil {
			from = *req.From
		}
		if req.To != nil {
			to = *req.To
		}
	}

	barData, err := s.repo.StatusDistribution(ctx, ownerID)
	if err != nil {
		log.Printf("DashboardService: Error computing status distribution for user %d: %v", ownerID, err)
		return nil, MapRepoError(err, "computing status distribution")
	}

	lineData, err := s.repo.DailySeries(ctx, ownerID, from, to)
	if err != nil {
		log.Printf("DashboardService: Error computing daily series for user %d: %v", ownerID, err)
		return nil, MapRepoError(err, "computing daily trend series")
	}

	return &dto.TrendsResponse{BarData: barData, LineData: lineData}, nil
}

// AverageResponseTime compares the Applied-to-first-response latency of the
// current calendar month against the previous one.
func (s *dashboardService) AverageResponseTime(ctx context.Context, ownerID int64) (*dto.AverageResponseTimeResponse, error) {
	now := s.now()
	currentStart := monthStart(now)
	nextStart := currentStart.AddDate(0, 1, 0)
	previousStart := currentStart.AddDate(0, -1, 0)

	current, err := s.repo.AverageResponseDays(ctx, ownerID, currentStart, nextStart)
	if err != nil {
		log.Printf("DashboardService: Error computing current-month response time for user %d: %v", ownerID, err)
		return nil, MapRepoError(err, "computing average response time")
	}

	previous, err := s.repo.AverageResponseDays(ctx, ownerID, previousStart, currentStart)
	if err != nil {
		log.Printf("DashboardService: Error computing previous-month response time for user %d: %v", ownerID, err)
		return nil, MapRepoError(err, "computing average response time")
	}

	average, faster, compared := formatAverageResponse(current, previous)
	return &dto.AverageResponseTimeResponse{
		Average:           average,
		FasterMessage:     faster,
		ComparedToMessage: compared,
	}, nil
}

// RecentActivities returns the merged feed of newest applications and
// newest status transitions.
func (s *dashboardService) RecentActivities(ctx context.Context, ownerID int64) (*dto.RecentActivitiesResponse, error) {
	activities, err := s.repo.RecentActivities(ctx, ownerID, recentActivityLimit)
	if err != nil {
		log.Printf("DashboardService: Error fetching recent activities for user %d: %v", ownerID, err)
		return nil, MapRepoError(err, "fetching recent activities")
	}
	return &dto.RecentActivitiesResponse{Activities: activities}, nil
}

// monthStart truncates t to the first instant of its calendar month.
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func formatSuccessRate(successful, total int64) string {
	if total <= 0 {
		return "0.00%"
	}
	return fmt.Sprintf("%.2f%%", float64(successful)/float64(total)*100)
}

// formatAverageResponse renders the monthly average and the month-over-month
// comparison. The comparison is only meaningful when both months have data.
func formatAverageResponse(current, previous *int64) (average, faster, compared string) {
	average = "N/A"
	if current != nil {
		average = fmt.Sprintf("%d days", *current)
	}

	switch {
	case current != nil && previous != nil && *current < *previous:
		return average, fmt.Sprintf("%d days faster", *previous-*current), "Compared to last month"
	case current != nil && previous != nil && *current > *previous:
		return average, fmt.Sprintf("%d days slower", *current-*previous), "Compared to last month"
	case current != nil && previous != nil:
		return average, "Same as last month", ""
	default:
		return average, "N/A", ""
	}
}
