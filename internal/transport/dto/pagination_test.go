package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestComputePagination(t *testing.T) {
	tests := []struct {
		name           string
		page           *int
		size           *int
		total          int64
		expectedPage   int
		expectedSize   int
		expectedOffset int64
		expectedPages  int64
	}{
		{
			name:           "Defaults",
			page:           nil,
			size:           nil,
			total:          25,
			expectedPage:   1,
			expectedSize:   20,
			expectedOffset: 0,
			expectedPages:  2,
		},
		{
			name:           "ExactPageBoundary",
			page:           intPtr(3),
			size:           intPtr(10),
			total:          30,
			expectedPage:   3,
			expectedSize:   10,
			expectedOffset: 20,
			expectedPages:  3,
		},
		{
			name:           "PartialLastPage",
			page:           intPtr(1),
			size:           intPtr(10),
			total:          25,
			expectedPage:   1,
			expectedSize:   10,
			expectedOffset: 0,
			expectedPages:  3,
		},
		{
			name:           "ZeroTotal",
			page:           intPtr(1),
			size:           intPtr(10),
			total:          0,
			expectedPage:   1,
			expectedSize:   10,
			expectedOffset: 0,
			expectedPages:  0,
		},
		{
			name:           "NegativePageClamped",
			page:           intPtr(-5),
			size:           intPtr(10),
			total:          25,
			expectedPage:   1,
			expectedSize:   10,
			expectedOffset: 0,
			expectedPages:  3,
		},
		{
			name:           "ZeroSizeClamped",
			page:           intPtr(2),
			size:           intPtr(0),
			total:          5,
			expectedPage:   2,
			expectedSize:   1,
			expectedOffset: 1,
			expectedPages:  5,
		},
		{
			name:           "PageBeyondTotal",
			page:           intPtr(100),
			size:           intPtr(10),
			total:          25,
			expectedPage:   100,
			expectedSize:   10,
			expectedOffset: 990,
			expectedPages:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, size, offset, totalPages := ComputePagination(tt.page, tt.size, tt.total)
			assert.Equal(t, tt.expectedPage, page)
			assert.Equal(t, tt.expectedSize, size)
			assert.Equal(t, tt.expectedOffset, offset)
			assert.Equal(t, tt.expectedPages, totalPages)
		})
	}
}

func TestComputePagination_OffsetNeverNegative(t *testing.T) {
	page, size, offset, _ := ComputePagination(intPtr(-100), intPtr(-100), 10)
	assert.Equal(t, 1, page)
	assert.Equal(t, 1, size)
	assert.GreaterOrEqual(t, offset, int64(0))
}
