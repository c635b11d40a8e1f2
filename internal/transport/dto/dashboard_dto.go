// internal/transport/dto/dashboard_dto.go
package dto

import (
	"time"

	"jobtrack/internal/models"
)

// DashboardCountsResponse reports applications per current-status bucket.
// Buckets with zero matches report 0, not absence.
type DashboardCountsResponse struct {
	Total         int64 `json:"total"`
	Interviews    int64 `json:"interviews"`
	Tests         int64 `json:"tests"`
	OffersAwarded int64 `json:"offersAwarded"`
	Withdrawn     int64 `json:"withdrawn"`
	Rejected      int64 `json:"rejected"`
}

// SuccessRateResponse reports the share of the last 30 applications whose
// current status indicates forward progress.
type SuccessRateResponse struct {
	Percentage string `json:"percentage"`
	Message    string `json:"message"`
}

// TrendsRequest bounds the trend window. Both bounds are optional; the
// service defaults the window to the current calendar month.
type TrendsRequest struct {
	From *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To   *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
}

// StatusCount is one bar-chart row: applications per status value.
type StatusCount struct {
	Status models.Status `json:"status" db:"status"`
	Count  int64         `json:"count" db:"count"`
}

// DateCount is one line-chart row: applications created on one day holding
// one status value.
type DateCount struct {
	Status models.Status `json:"status" db:"status"`
	Date   time.Time     `json:"date" db:"date"`
	Count  int64         `json:"count" db:"count"`
}

// TrendsResponse carries both trend series.
type TrendsResponse struct {
	BarData  []StatusCount `json:"barData"`
	LineData []DateCount   `json:"lineData"`
}

// AverageResponseTimeResponse compares Applied-to-first-response latency
// between the current and previous calendar month.
type AverageResponseTimeResponse struct {
	Average           string `json:"average"`
	FasterMessage     string `json:"fasterMessage"`
	ComparedToMessage string `json:"comparedToMessage"`
}

// RecentActivity is one feed entry: a newly created application or a status
// transition. PreviousStatus is set for transitions only.
type RecentActivity struct {
	Company        string         `json:"company" db:"company"`
	Position       string         `json:"position" db:"position"`
	CurrentStatus  models.Status  `json:"currentStatus" db:"current_status"`
	PreviousStatus *models.Status `json:"previousStatus,omitempty" db:"previous_status"`
	LastUpdated    time.Time      `json:"lastUpdated" db:"last_updated"`
}

// RecentActivitiesResponse carries the merged feed, newest first.
type RecentActivitiesResponse struct {
	Activities []RecentActivity `json:"activities"`
}
