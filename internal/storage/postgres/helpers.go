package postgres

import (
	"fmt"
	"strings"

	"jobtrack/internal/transport/dto"
)

// latestStatusCondition restricts applications to those whose *latest* event
// (greatest created_at, ties broken by greatest id) has the bound status —
// not applications that ever passed through it. The ordering must stay in
// step with latestStatusesCTE and models.LatestStatus. The %d verb receives
// the placeholder index of the status argument.
const latestStatusCondition = `id IN (
		SELECT s1.application_id
		FROM application_statuses s1
		WHERE s1.status_type = $%d
		  AND (s1.created_at, s1.id) = (
				SELECT s2.created_at, s2.id
				FROM application_statuses s2
				WHERE s2.application_id = s1.application_id
				ORDER BY s2.created_at DESC, s2.id DESC
				LIMIT 1
		  )
	)`

// applicationFilterConditions composes the WHERE clauses for the listing
// queries. Both the COUNT and the page-fetch query consume this one function,
// so their predicates cannot drift apart. Every user-supplied value is bound
// through the args slice, never interpolated into the query text.
//
// Ownership and the soft-delete guard always come first; search, status and
// the date bounds are optional and independently composable. A search term
// that is empty after trimming is treated as absent.
func applicationFilterConditions(ownerID int64, filter *dto.ApplicationFilter) ([]string, []interface{}) {
	conditions := []string{"created_by = $1", "deleted = FALSE"}
	args := []interface{}{ownerID}

	if filter == nil {
		return conditions, args
	}

	if filter.Search != nil {
		if term := strings.TrimSpace(*filter.Search); term != "" {
			args = append(args, "%"+term+"%")
			n := len(args)
			conditions = append(conditions,
				fmt.Sprintf("(company ILIKE $%d OR position ILIKE $%d OR website ILIKE $%d)", n, n, n))
		}
	}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf(latestStatusCondition, len(args)))
	}

	if filter.From != nil {
		args = append(args, *filter.From)
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conditions = append(conditions, fmt.Sprintf("created_at <= $%d", len(args)))
	}

	return conditions, args
}

// buildApplicationCountQuery assembles the COUNT query from the shared
// conditions.
func buildApplicationCountQuery(conditions []string) string {
	return "SELECT COUNT(*) FROM applications WHERE " + strings.Join(conditions, " AND ")
}

// buildApplicationListQuery assembles the page-fetch query from the shared
// conditions, newest applications first.
func buildApplicationListQuery(baseQuery string, conditions []string, args *[]interface{}, limit int, offset int64) string {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(baseQuery)

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE ")
		queryBuilder.WriteString(strings.Join(conditions, " AND "))
	}

	queryBuilder.WriteString(" ORDER BY created_at DESC")

	*args = append(*args, limit)
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d", len(*args)))
	*args = append(*args, offset)
	queryBuilder.WriteString(fmt.Sprintf(" OFFSET $%d", len(*args)))

	return queryBuilder.String()
}
