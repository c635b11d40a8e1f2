// internal/transport/dto/pagination.go
package dto

import "math"

const (
	defaultPage = 1
	defaultSize = 20
)

// ComputePagination normalizes raw page/size inputs into a bounded page,
// size, offset and total-page count. Pure; no failure mode — nonsensical
// inputs are clamped rather than rejected.
//
// page defaults to 1 and is clamped to a minimum of 1; size defaults to 20
// and is clamped to a minimum of 1 (callers may cap upstream). totalPages is
// ceil(total/size), 0 when total is 0.
func ComputePagination(page, size *int, total int64) (int, int, int64, int64) {
	p := defaultPage
	if page != nil {
		p = *page
	}
	if p < 1 {
		p = 1
	}
	if p > math.MaxInt32 {
		p = math.MaxInt32
	}

	s := defaultSize
	if size != nil {
		s = *size
	}
	if s < 1 {
		s = 1
	}
	if s > math.MaxInt32 {
		s = math.MaxInt32
	}

	offset := (int64(p) - 1) * int64(s)

	var totalPages int64
	if total > 0 {
		totalPages = (total + int64(s) - 1) / int64(s)
	}

	return p, s, offset, totalPages
}

// PaginatedApplicationsResponse is the listing envelope.
type PaginatedApplicationsResponse struct {
	Items      []ApplicationResponse `json:"items"`
	TotalItems int64                 `json:"total_items"`
	Page       int                   `json:"page"`
	PageSize   int                   `json:"page_size"`
	TotalPages int64                 `json:"total_pages"`
}
