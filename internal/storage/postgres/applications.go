// internal/storage/postgres/applications.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"jobtrack/internal/models"
	"jobtrack/internal/storage"
	"jobtrack/internal/transport/dto"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn" // For checking specific errors
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the subset of pgx operations the repositories need. Both
// *pgxpool.Pool and pgx.Tx satisfy it.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const applicationColumns = "id, company, position, website, channel, created_by, created_at, updated_at, deleted_at, deleted"

const statusColumns = "id, application_id, status_type, test_type, interview_type, notes, created_by, created_at"

// ApplicationRepo implements the storage.ApplicationRepository interface
// using PostgreSQL.
type ApplicationRepo struct {
	db   Querier
	pool *pgxpool.Pool // Kept for the transactional create path
}

// NewApplicationRepo creates a new ApplicationRepo.
func NewApplicationRepo(db *pgxpool.Pool) *ApplicationRepo {
	return &ApplicationRepo{db: db, pool: db}
}

// WithTx creates a new ApplicationRepo bound to the transaction.
func (r *ApplicationRepo) WithTx(tx pgx.Tx) storage.ApplicationRepository {
	return &ApplicationRepo{db: tx}
}

// Compile-time check to ensure ApplicationRepo implements ApplicationRepository
var _ storage.ApplicationRepository = (*ApplicationRepo)(nil)

// Create inserts the application row and its initial Applied event in one
// transaction. Either both rows exist afterwards or neither does, so the
// at-least-one-event invariant holds from the first instant.
func (r *ApplicationRepo) Create(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, *models.ApplicationStatus, error) {
	if r.pool == nil {
		return nil, nil, fmt.Errorf("create requires a pool-backed repository")
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		log.Printf("Error beginning transaction for application create: %v\n", err)
		return nil, nil, fmt.Errorf("failed to begin application create: %w", err)
	}
	defer tx.Rollback(ctx)

	insertApplication := `
		INSERT INTO applications (company, position, website, channel, created_by, created_at, updated_at, deleted, deleted_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW(), FALSE, NULL)
		RETURNING ` + applicationColumns

	var app models.Application
	err = tx.QueryRow(ctx, insertApplication,
		req.Company,
		req.Position,
		req.Website,
		req.Channel,
		req.CreatedBy,
	).Scan(
		&app.ID,
		&app.Company,
		&app.Position,
		&app.Website,
		&app.Channel,
		&app.CreatedBy,
		&app.CreatedAt,
		&app.UpdatedAt,
		&app.DeletedAt,
		&app.Deleted,
	)
	if err != nil {
		log.Printf("Error inserting application: %v\n", err)
		return nil, nil, fmt.Errorf("failed to create application: %w", err)
	}

	insertStatus := `
		INSERT INTO application_statuses (application_id, status_type, test_type, interview_type, notes, created_by, created_at)
		VALUES ($1, $2, NULL, NULL, NULL, $3, NOW())
		RETURNING ` + statusColumns

	var initial models.ApplicationStatus
	err = tx.QueryRow(ctx, insertStatus, app.ID, models.StatusApplied, req.CreatedBy).Scan(
		&initial.ID,
		&initial.ApplicationID,
		&initial.StatusType,
		&initial.TestType,
		&initial.InterviewType,
		&initial.Notes,
		&initial.CreatedBy,
		&initial.CreatedAt,
	)
	if err != nil {
		log.Printf("Error inserting initial status for application %d: %v\n", app.ID, err)
		return nil, nil, fmt.Errorf("failed to create initial status: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("Error committing application create: %v\n", err)
		return nil, nil, fmt.Errorf("failed to commit application create: %w", err)
	}

	log.Printf("Application created successfully with ID: %d", app.ID)
	return &app, &initial, nil
}

// AppendStatus inserts one event at the end of an application's history.
func (r *ApplicationRepo) AppendStatus(ctx context.Context, req *dto.AddStatusRequest) (*models.ApplicationStatus, error) {
	query := `
		INSERT INTO application_statuses (application_id, status_type, test_type, interview_type, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING ` + statusColumns

	var ev models.ApplicationStatus
	err := r.db.QueryRow(ctx, query,
		req.ApplicationID,
		req.StatusType,
		req.TestType,
		req.InterviewType,
		req.Notes,
		req.CreatedBy,
	).Scan(
		&ev.ID,
		&ev.ApplicationID,
		&ev.StatusType,
		&ev.TestType,
		&ev.InterviewType,
		&ev.Notes,
		&ev.CreatedBy,
		&ev.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			log.Printf("Error appending status: application %d does not exist: %v\n", req.ApplicationID, err)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error appending status for application %d: %v\n", req.ApplicationID, err)
		return nil, fmt.Errorf("failed to append status: %w", err)
	}

	return &ev, nil
}

// ExistsByID reports whether a live (not soft-deleted) application exists.
func (r *ApplicationRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM applications WHERE id = $1 AND deleted = FALSE)", id,
	).Scan(&exists)
	if err != nil {
		log.Printf("Error checking application existence for %d: %v\n", id, err)
		return false, fmt.Errorf("failed to check application existence: %w", err)
	}
	return exists, nil
}

// CountByOwner counts the applications matching the filter. It shares its
// predicate construction with ListByOwner.
func (r *ApplicationRepo) CountByOwner(ctx context.Context, ownerID int64, filter *dto.ApplicationFilter) (int64, error) {
	conditions, args := applicationFilterConditions(ownerID, filter)
	query := buildApplicationCountQuery(conditions)

	var total int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		log.Printf("Error counting applications for user %d: %v\n", ownerID, err)
		return 0, fmt.Errorf("failed to count applications: %w", err)
	}
	return total, nil
}

// ListByOwner fetches one page of applications matching the filter, newest
// first.
func (r *ApplicationRepo) ListByOwner(ctx context.Context, ownerID int64, filter *dto.ApplicationFilter, limit int, offset int64) ([]models.Application, error) {
	conditions, args := applicationFilterConditions(ownerID, filter)
	query := buildApplicationListQuery("SELECT "+applicationColumns+" FROM applications", conditions, &args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		log.Printf("Error querying applications for user %d: %v\n", ownerID, err)
		return nil, fmt.Errorf("failed to query applications: %w", err)
	}
	defer rows.Close()

	apps, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Application])
	if err != nil {
		log.Printf("Error scanning applications for user %d: %v\n", ownerID, err)
		return nil, fmt.Errorf("failed to scan applications: %w", err)
	}

	if apps == nil {
		apps = []models.Application{} // Return empty slice, not nil
	}

	return apps, nil
}

// HistoryByApplicationIDs fetches the complete event logs for a page of
// applications in one batched query, ordered chronologically.
func (r *ApplicationRepo) HistoryByApplicationIDs(ctx context.Context, ids []int64) ([]models.ApplicationStatus, error) {
	if len(ids) == 0 {
		return []models.ApplicationStatus{}, nil
	}

	query := `
		SELECT ` + statusColumns + `
		FROM application_statuses
		WHERE application_id = ANY($1)
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		log.Printf("Error querying status history for %d applications: %v\n", len(ids), err)
		return nil, fmt.Errorf("failed to query status history: %w", err)
	}
	defer rows.Close()

	events, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ApplicationStatus])
	if err != nil {
		log.Printf("Error scanning status history: %v\n", err)
		return nil, fmt.Errorf("failed to scan status history: %w", err)
	}

	if events == nil {
		events = []models.ApplicationStatus{}
	}

	return events, nil
}

// SoftDelete marks an owner's application as deleted. The status log is kept
// untouched.
func (r *ApplicationRepo) SoftDelete(ctx context.Context, req *dto.DeleteApplicationRequest) error {
	query := `
		UPDATE applications
		SET deleted = TRUE, deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND created_by = $2 AND deleted = FALSE
	`

	cmdTag, err := r.db.Exec(ctx, query, req.ID, req.CreatedBy)
	if err != nil {
		log.Printf("Error soft-deleting application %d: %v\n", req.ID, err)
		return fmt.Errorf("failed to delete application %d: %w", req.ID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		log.Printf("Application not found for deletion with ID: %d\n", req.ID)
		return storage.ErrNotFound
	}

	log.Printf("Application soft-deleted successfully: %d", req.ID)
	return nil
}
