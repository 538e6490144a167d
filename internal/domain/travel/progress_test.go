package travel

import (
	"testing"

	"locus/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapProgress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		page       int
		totalPages int
		pathLength int
		wantIndex  int
		wantOK     bool
	}{
		{name: "first page is path start", page: 1, totalPages: 10, pathLength: 100, wantIndex: 0, wantOK: true},
		{name: "middle page", page: 6, totalPages: 10, pathLength: 100, wantIndex: 50, wantOK: true},
		{name: "last page stays short of the end", page: 10, totalPages: 10, pathLength: 100, wantIndex: 90, wantOK: true},
		{name: "floors fractional index", page: 2, totalPages: 3, pathLength: 10, wantIndex: 3, wantOK: true},
		{name: "single page document", page: 1, totalPages: 1, pathLength: 2, wantIndex: 0, wantOK: true},
		{name: "more pages than points is capped", page: 10, totalPages: 10, pathLength: 2, wantIndex: 0, wantOK: true},
		{name: "page count unknown", page: 1, totalPages: 0, pathLength: 100, wantOK: false},
		{name: "path missing", page: 1, totalPages: 10, pathLength: 0, wantOK: false},
		{name: "path of one point", page: 1, totalPages: 10, pathLength: 1, wantOK: false},
		{name: "page zero", page: 0, totalPages: 10, pathLength: 100, wantOK: false},
		{name: "page past the end", page: 11, totalPages: 10, pathLength: 100, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			index, ok := MapProgress(tt.page, tt.totalPages, tt.pathLength)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantIndex, index)
			}
		})
	}
}

func TestMapProgress_FirstPageAlwaysZero(t *testing.T) {
	t.Parallel()

	for totalPages := 1; totalPages <= 50; totalPages++ {
		for pathLength := 2; pathLength <= 50; pathLength++ {
			index, ok := MapProgress(1, totalPages, pathLength)
			require.True(t, ok)
			require.Zero(t, index, "totalPages=%d pathLength=%d", totalPages, pathLength)
		}
	}
}

func TestMapProgress_BoundedAndMonotonic(t *testing.T) {
	t.Parallel()

	for totalPages := 1; totalPages <= 40; totalPages++ {
		for _, pathLength := range []int{2, 3, 7, 40, 41, 100, 997} {
			prev := -1
			for page := 1; page <= totalPages; page++ {
				index, ok := MapProgress(page, totalPages, pathLength)
				require.True(t, ok)
				require.GreaterOrEqual(t, index, 0)
				require.LessOrEqual(t, index, pathLength-2,
					"page=%d totalPages=%d pathLength=%d", page, totalPages, pathLength)
				require.GreaterOrEqual(t, index, prev, "index decreased at page %d", page)
				prev = index
			}
		}
	}
}

func TestFraction(t *testing.T) {
	t.Parallel()

	assert.Zero(t, Fraction(entity.ReadingProgress{Page: 1}))
	assert.InDelta(t, 0.25, Fraction(entity.ReadingProgress{Page: 1, TotalPages: 4}), 1e-12)
	assert.InDelta(t, 1.0, Fraction(entity.ReadingProgress{Page: 4, TotalPages: 4}), 1e-12)
}
