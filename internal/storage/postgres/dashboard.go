// internal/storage/postgres/dashboard.go
package postgres

import (
	"context"
	"fmt"
	"log"
	"time"

	"jobtrack/internal/storage"
	"jobtrack/internal/transport/dto"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// latestStatusesCTE resolves each live application of user $1 to its current
// status: the event with the greatest created_at, ties broken by the greatest
// event id. Every analytics query and the listing status filter must agree on
// this one definition (see latestStatusCondition and models.LatestStatus).
// Applications with an empty event log — an integrity violation — drop out of
// the inner join rather than surfacing with a NULL status.
const latestStatusesCTE = `
	latest_statuses AS (
		SELECT DISTINCT ON (a.id)
			a.id AS application_id,
			date_trunc('day', a.created_at)::date AS created_day,
			s.status_type
		FROM applications a
		JOIN application_statuses s ON s.application_id = a.id
		WHERE a.created_by = $1 AND a.deleted = FALSE
		ORDER BY a.id, s.created_at DESC, s.id DESC
	)`

const allStatusesCTE = `
	all_statuses AS (
		SELECT unnest(ARRAY['Applied', 'Test', 'Interview', 'OfferAwarded', 'Rejected', 'Withdrawn']::VARCHAR[]) AS status_type
	)`

// DashboardRepo implements the storage.DashboardRepository interface using
// PostgreSQL. All of its queries are read-only.
type DashboardRepo struct {
	db Querier
}

// NewDashboardRepo creates a new DashboardRepo.
func NewDashboardRepo(db *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{db: db}
}

// Compile-time check to ensure DashboardRepo implements DashboardRepository
var _ storage.DashboardRepository = (*DashboardRepo)(nil)

// StatusCounts buckets a user's applications by current status. Empty
// buckets come back as 0.
func (r *DashboardRepo) StatusCounts(ctx context.Context, ownerID int64) (*dto.DashboardCountsResponse, error) {
	query := `
		WITH` + latestStatusesCTE + `
		SELECT
			COUNT(*) AS total,
			COUNT(CASE WHEN status_type = 'Interview' THEN 1 END) AS interviews,
			COUNT(CASE WHEN status_type = 'Test' THEN 1 END) AS tests,
			COUNT(CASE WHEN status_type = 'OfferAwarded' THEN 1 END) AS offers_awarded,
			COUNT(CASE WHEN status_type = 'Withdrawn' THEN 1 END) AS withdrawn,
			COUNT(CASE WHEN status_type = 'Rejected' THEN 1 END) AS rejected
		FROM latest_statuses
	`

	var counts dto.DashboardCountsResponse
	err := r.db.QueryRow(ctx, query, ownerID).Scan(
		&counts.Total,
		&counts.Interviews,
		&counts.Tests,
		&counts.OffersAwarded,
		&counts.Withdrawn,
		&counts.Rejected,
	)
	if err != nil {
		log.Printf("Error computing dashboard counts for user %d: %v\n", ownerID, err)
		return nil, fmt.Errorf("failed to compute dashboard counts: %w", err)
	}

	return &counts, nil
}

// SuccessRateCounts reports, over the user's 30 most recent applications
// (by application id descending), how many currently sit in a forward-moving
// status and how many qualified at all. The caller does the formatting.
func (r *DashboardRepo) SuccessRateCounts(ctx context.Context, ownerID int64) (int64, int64, error) {
	query := `
		WITH` + latestStatusesCTE + `,
		recent_applications AS (
			SELECT status_type
			FROM latest_statuses
			ORDER BY application_id DESC
			LIMIT 30
		)
		SELECT
			COUNT(CASE WHEN status_type IN ('OfferAwarded', 'Interview', 'Test') THEN 1 END) AS successful,
			COUNT(*) AS total
		FROM recent_applications
	`

	var successful, total int64
	if err := r.db.QueryRow(ctx, query, ownerID).Scan(&successful, &total); err != nil {
		log.Printf("Error computing success rate for user %d: %v\n", ownerID, err)
		return 0, 0, fmt.Errorf("failed to compute success rate: %w", err)
	}

	return successful, total, nil
}

// StatusDistribution returns one row per status value — all six, zeros
// included — counting applications by current status.
func (r *DashboardRepo) StatusDistribution(ctx context.Context, ownerID int64) ([]dto.StatusCount, error) {
	query := `
		WITH` + allStatusesCTE + `,` + latestStatusesCTE + `
		SELECT
			all_statuses.status_type AS status,
			COUNT(latest_statuses.application_id) AS count
		FROM all_statuses
		LEFT JOIN latest_statuses ON latest_statuses.status_type = all_statuses.status_type
		GROUP BY all_statuses.status_type
		ORDER BY all_statuses.status_type
	`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		log.Printf("Error querying status distribution for user %d: %v\n", ownerID, err)
		return nil, fmt.Errorf("failed to query status distribution: %w", err)
	}
	defer rows.Close()

	counts, err := pgx.CollectRows(rows, pgx.RowToStructByName[dto.StatusCount])
	if err != nil {
		log.Printf("Error scanning status distribution for user %d: %v\n", ownerID, err)
		return nil, fmt.Errorf("failed to scan status distribution: %w", err)
	}

	return counts, nil
}

// DailySeries returns one row per (day, status) pair across the whole
// [from, to] window — a dense cross product, counts defaulting to 0. The day
// of an application is the calendar day it was created, not the day of its
// latest event.
func (r *DashboardRepo) DailySeries(ctx context.Context, ownerID int64, from, to time.Time) ([]dto.DateCount, error) {
	query := `
		WITH date_series AS (
			SELECT generate_series(
				date_trunc('day', $2::timestamptz),
				date_trunc('day', $3::timestamptz),
				interval '1 day'
			)::date AS day
		),` + allStatusesCTE + `,
		day_statuses AS (
			SELECT date_series.day, all_statuses.status_type
			FROM date_series
			CROSS JOIN all_statuses
		),` + latestStatusesCTE + `
		SELECT
			day_statuses.day::timestamptz AS date,
			day_statuses.status_type AS status,
			COUNT(latest_statuses.application_id) AS count
		FROM day_statuses
		LEFT JOIN latest_statuses ON
			latest_statuses.created_day = day_statuses.day AND
			latest_statuses.status_type = day_statuses.status_type
		GROUP BY day_statuses.day, day_statuses.status_type
		ORDER BY day_statuses.day, day_statuses.status_type
	`

	rows, err := r.db.Query(ctx, query, ownerID, from, to)
	if err != nil {
		log.Printf("Error querying daily trend series for user %d: %v\n", ownerID, err)
		return nil, fmt.Errorf("failed to query daily trend series: %w", err)
	}
	defer rows.Close()

	counts, err := pgx.CollectRows(rows, pgx.RowToStructByName[dto.DateCount])
	if err != nil {
		log.Printf("Error scanning daily trend series for user %d: %v\n", ownerID, err)
		return nil, fmt.Errorf("failed to scan daily trend series: %w", err)
	}

	return counts, nil
}

// AverageResponseDays computes the average whole-day latency between an
// application's Applied event and its earliest Test or Interview event, over
// responses landing inside [from, to). Returns nil when no application
// qualifies.
func (r *DashboardRepo) AverageResponseDays(ctx context.Context, ownerID int64, from, to time.Time) (*int64, error) {
	query := `
		WITH applied_times AS (
			SELECT application_id, MIN(created_at) AS applied_at
			FROM application_statuses
			WHERE status_type = 'Applied'
			GROUP BY application_id
		),
		response_times AS (
			SELECT application_id, MIN(created_at) AS responded_at
			FROM application_statuses
			WHERE status_type IN ('Test', 'Interview')
			GROUP BY application_id
		)
		SELECT FLOOR(AVG(EXTRACT(EPOCH FROM (resp.responded_at - applied.applied_at)) / 86400))::bigint
		FROM applications a
		JOIN applied_times applied ON applied.application_id = a.id
		JOIN response_times resp ON resp.application_id = a.id
		WHERE a.created_by = $1
		  AND a.deleted = FALSE
		  AND resp.responded_at >= $2
		  AND resp.responded_at < $3
		  AND resp.responded_at > applied.applied_at
	`

	var days *int64
	if err := r.db.QueryRow(ctx, query, ownerID, from, to).Scan(&days); err != nil {
		log.Printf("Error computing average response days for user %d: %v\n", ownerID, err)
		return nil, fmt.Errorf("failed to compute average response days: %w", err)
	}

	return days, nil
}

// RecentActivities merges the user's newest applications with their newest
// status transitions (events that have a predecessor on the same
// application, found via LAG) and returns the most recent entries by
// last-updated time.
func (r *DashboardRepo) RecentActivities(ctx context.Context, ownerID int64, limit int) ([]dto.RecentActivity, error) {
	query := `
		WITH recent_applications AS (
			SELECT
				a.id,
				a.company,
				a.position,
				(
					SELECT s.status_type
					FROM application_statuses s
					WHERE s.application_id = a.id
					ORDER BY s.created_at DESC, s.id DESC
					LIMIT 1
				) AS current_status,
				NULL::VARCHAR AS previous_status,
				a.created_at AS last_updated
			FROM applications a
			WHERE a.created_by = $1 AND a.deleted = FALSE
			ORDER BY a.created_at DESC
			LIMIT $2
		),
		recent_status_updates AS (
			SELECT id, company, position, current_status, previous_status, last_updated
			FROM (
				SELECT
					a.id,
					a.company,
					a.position,
					s.status_type AS current_status,
					LAG(s.status_type) OVER (PARTITION BY s.application_id ORDER BY s.created_at ASC, s.id ASC) AS previous_status,
					s.created_at AS last_updated
				FROM applications a
				JOIN application_statuses s ON s.application_id = a.id
				WHERE a.created_by = $1 AND a.deleted = FALSE
			) transitions
			WHERE previous_status IS NOT NULL
			ORDER BY last_updated DESC
			LIMIT $2
		)
		SELECT company, position, current_status, previous_status, last_updated
		FROM (
			SELECT * FROM recent_applications
			UNION ALL
			SELECT * FROM recent_status_updates
		) merged
		WHERE current_status IS NOT NULL
		ORDER BY last_updated DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, ownerID, limit)
	if err != nil {
		log.Printf("Error querying recent activities for user %d: %v\n", ownerID, err)
		return nil, fmt.Errorf("failed to query recent activities: %w", err)
	}
	defer rows.Close()

	activities, err := pgx.CollectRows(rows, pgx.RowToStructByName[dto.RecentActivity])
	if err != nil {
		log.Printf("Error scanning recent activities for user %d: %v\n", ownerID, err)
		return nil, fmt.Errorf("failed to scan recent activities: %w", err)
	}

	if activities == nil {
		activities = []dto.RecentActivity{}
	}

	return activities, nil
}
