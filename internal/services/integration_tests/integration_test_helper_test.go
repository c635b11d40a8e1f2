package integration_tests

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"jobtrack/internal/database"
	"jobtrack/internal/models"
	"jobtrack/internal/storage/postgres"
	"jobtrack/internal/transport/dto"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// getTestPool establishes a connection pool to the test database and applies
// the schema migrations. It reads the DSN from the TEST_DATABASE_URL
// environment variable; without it the integration tests are skipped.
func getTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL environment variable not set, skipping integration test")
	}

	migrateDSN := strings.Replace(dsn, "postgresql://", "pgx5://", 1)
	migrateDSN = strings.Replace(migrateDSN, "postgres://", "pgx5://", 1)
	require.NoError(t, database.RunMigrationsDSN(migrateDSN), "Failed to migrate test database")

	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err, "Failed to connect to test database")
	t.Cleanup(pool.Close)

	return pool
}

// cleanupTables truncates the given tables after a test, resetting sequences
// so id-based assertions stay stable across runs.
func cleanupTables(ctx context.Context, t *testing.T, pool *pgxpool.Pool, tables ...string) {
	t.Helper()
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table))
		require.NoError(t, err, "Failed to truncate table %s", table)
	}
}

// Helper function to create a user for tests
func createTestUser(t *testing.T, ctx context.Context, pool *pgxpool.Pool, email, name string) *models.User {
	t.Helper()
	userRepo := postgres.NewUserRepo(pool)
	user, err := userRepo.Create(ctx, &dto.CreateUserRequest{
		Name:     name,
		Email:    email,
		Password: "password",
	}, "not-a-real-hash")
	require.NoError(t, err, "Failed to create test user %s", email)
	require.NotNil(t, user)
	return user
}

// Helper function to create an application (with its initial Applied event)
// for tests
func createTestApplication(t *testing.T, ctx context.Context, pool *pgxpool.Pool, ownerID int64, company, position string) *models.Application {
	t.Helper()
	appRepo := postgres.NewApplicationRepo(pool)
	app, initial, err := appRepo.Create(ctx, &dto.CreateApplicationRequest{
		Company:   company,
		Position:  position,
		Channel:   models.ChannelEmail,
		CreatedBy: ownerID,
	})
	require.NoError(t, err, "Failed to create test application for %s", company)
	require.NotNil(t, app)
	require.NotNil(t, initial)
	require.Equal(t, models.StatusApplied, initial.StatusType)
	return app
}

// insertStatusAt appends a status event with an explicit creation timestamp,
// bypassing the repository's NOW() default. Needed for histories whose event
// ordering (including exact timestamp ties) is the thing under test.
func insertStatusAt(t *testing.T, ctx context.Context, pool *pgxpool.Pool, appID int64, status models.Status, createdBy int64, createdAt time.Time) int64 {
	t.Helper()
	var id int64
	err := pool.QueryRow(ctx, `
		INSERT INTO application_statuses (application_id, status_type, test_type, interview_type, notes, created_by, created_at)
		VALUES ($1, $2, NULL, NULL, NULL, $3, $4)
		RETURNING id
	`, appID, status, createdBy, createdAt).Scan(&id)
	require.NoError(t, err, "Failed to insert %s status for application %d", status, appID)
	return id
}

// softDeleteApplication marks an application deleted directly.
func softDeleteApplication(t *testing.T, ctx context.Context, pool *pgxpool.Pool, appID int64) {
	t.Helper()
	_, err := pool.Exec(ctx,
		"UPDATE applications SET deleted = TRUE, deleted_at = NOW() WHERE id = $1", appID)
	require.NoError(t, err, "Failed to soft-delete application %d", appID)
}
