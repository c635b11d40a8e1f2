package postgres

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"jobtrack/internal/models"
	"jobtrack/internal/transport/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func statusPtr(s models.Status) *models.Status { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func TestApplicationFilterConditions_NilFilter(t *testing.T) {
	conditions, args := applicationFilterConditions(7, nil)

	require.Equal(t, []string{"created_by = $1", "deleted = FALSE"}, conditions)
	require.Equal(t, []interface{}{int64(7)}, args)
}

func TestApplicationFilterConditions_EmptyFilter(t *testing.T) {
	conditions, args := applicationFilterConditions(7, &dto.ApplicationFilter{})

	assert.Equal(t, []string{"created_by = $1", "deleted = FALSE"}, conditions)
	assert.Len(t, args, 1)
}

func TestApplicationFilterConditions_Search(t *testing.T) {
	filter := &dto.ApplicationFilter{Search: strPtr("acme")}
	conditions, args := applicationFilterConditions(7, filter)

	require.Len(t, conditions, 3)
	assert.Equal(t, "(company ILIKE $2 OR position ILIKE $2 OR website ILIKE $2)", conditions[2])
	require.Len(t, args, 2)
	assert.Equal(t, "%acme%", args[1])
}

func TestApplicationFilterConditions_WhitespaceSearchIgnored(t *testing.T) {
	filter := &dto.ApplicationFilter{Search: strPtr("   ")}
	conditions, args := applicationFilterConditions(7, filter)

	assert.Len(t, conditions, 2)
	assert.Len(t, args, 1)
}

func TestApplicationFilterConditions_SearchTermTrimmed(t *testing.T) {
	filter := &dto.ApplicationFilter{Search: strPtr("  acme corp  ")}
	_, args := applicationFilterConditions(7, filter)

	require.Len(t, args, 2)
	assert.Equal(t, "%acme corp%", args[1])
}

func TestApplicationFilterConditions_StatusUsesLatestEvent(t *testing.T) {
	filter := &dto.ApplicationFilter{Status: statusPtr(models.StatusInterview)}
	conditions, args := applicationFilterConditions(7, filter)

	require.Len(t, conditions, 3)
	assert.Equal(t, fmt.Sprintf(latestStatusCondition, 2), conditions[2])
	assert.Contains(t, conditions[2], "ORDER BY s2.created_at DESC, s2.id DESC")
	require.Len(t, args, 2)
	assert.Equal(t, models.StatusInterview, args[1])
}

func TestApplicationFilterConditions_DateBounds(t *testing.T) {
	from := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	filter := &dto.ApplicationFilter{From: timePtr(from), To: timePtr(to)}

	conditions, args := applicationFilterConditions(7, filter)

	require.Len(t, conditions, 4)
	assert.Equal(t, "created_at >= $2", conditions[2])
	assert.Equal(t, "created_at <= $3", conditions[3])
	require.Len(t, args, 3)
	assert.Equal(t, from, args[1])
	assert.Equal(t, to, args[2])
}

func TestApplicationFilterConditions_AllFiltersPlaceholderNumbering(t *testing.T) {
	from := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	filter := &dto.ApplicationFilter{
		Search: strPtr("acme"),
		Status: statusPtr(models.StatusTest),
		From:   timePtr(from),
		To:     timePtr(to),
	}

	conditions, args := applicationFilterConditions(7, filter)

	require.Len(t, conditions, 6)
	require.Len(t, args, 5)
	assert.Contains(t, conditions[2], "$2")
	assert.Contains(t, conditions[3], "$3")
	assert.Equal(t, "created_at >= $4", conditions[4])
	assert.Equal(t, "created_at <= $5", conditions[5])
}

// The COUNT and page-fetch queries must be built from the same conditions so
// their predicates cannot drift apart.
func TestCountAndListQueriesShareConditions(t *testing.T) {
	filter := &dto.ApplicationFilter{Search: strPtr("acme"), Status: statusPtr(models.StatusApplied)}

	conditions, args := applicationFilterConditions(7, filter)
	countQuery := buildApplicationCountQuery(conditions)

	listArgs := make([]interface{}, len(args))
	copy(listArgs, args)
	listQuery := buildApplicationListQuery("SELECT id FROM applications", conditions, &listArgs, 20, 0)

	where := strings.Join(conditions, " AND ")
	assert.Contains(t, countQuery, where)
	assert.Contains(t, listQuery, where)
}

func TestBuildApplicationCountQuery(t *testing.T) {
	query := buildApplicationCountQuery([]string{"created_by = $1", "deleted = FALSE"})
	assert.Equal(t, "SELECT COUNT(*) FROM applications WHERE created_by = $1 AND deleted = FALSE", query)
}

func TestBuildApplicationListQuery(t *testing.T) {
	args := []interface{}{int64(7)}
	query := buildApplicationListQuery(
		"SELECT id FROM applications",
		[]string{"created_by = $1", "deleted = FALSE"},
		&args, 20, 40,
	)

	assert.Equal(t,
		"SELECT id FROM applications WHERE created_by = $1 AND deleted = FALSE ORDER BY created_at DESC LIMIT $2 OFFSET $3",
		query)
	require.Len(t, args, 3)
	assert.Equal(t, 20, args[1])
	assert.Equal(t, int64(40), args[2])
}
