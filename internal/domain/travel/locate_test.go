package travel

import (
	"testing"

	"locus/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// straightNorth returns n points one hundredth of a degree apart along the
// prime meridian
func straightNorth(n int) entity.Path {
	path := make(entity.Path, n)
	for i := range path {
		path[i] = entity.GeoPoint{Lat: float64(i) * 0.01}
	}

	return path
}

func TestLocate_NotReady(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     entity.Path
		progress entity.ReadingProgress
	}{
		{name: "no path", path: nil, progress: entity.ReadingProgress{Page: 1, TotalPages: 10}},
		{name: "single point path", path: straightNorth(1), progress: entity.ReadingProgress{Page: 1, TotalPages: 10}},
		{name: "no page count", path: straightNorth(10), progress: entity.ReadingProgress{Page: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fix, ok := Locate(tt.path, tt.progress)
			assert.False(t, ok)
			assert.Equal(t, entity.Fix{}, fix)
		})
	}
}

func TestLocate_SelectsBracketingPoints(t *testing.T) {
	t.Parallel()

	path := straightNorth(100)

	fix, ok := Locate(path, entity.ReadingProgress{Page: 10, TotalPages: 10})
	require.True(t, ok)

	assert.Equal(t, 90, fix.Index)
	assert.Equal(t, path[90], fix.Position)
	assert.Equal(t, path[91], fix.Next)
	assert.InDelta(t, 0, fix.Bearing.Degrees(), bearingTolerance)
}

func TestLocate_TurnsWithThePath(t *testing.T) {
	t.Parallel()

	// North for two points, then east
	path := entity.Path{
		{Lat: 0, Lng: 0},
		{Lat: 0.01, Lng: 0},
		{Lat: 0.01, Lng: 0.01},
		{Lat: 0.01, Lng: 0.02},
	}

	first, ok := Locate(path, entity.ReadingProgress{Page: 1, TotalPages: 2})
	require.True(t, ok)
	assert.InDelta(t, 0, first.Bearing.Degrees(), 0.01)

	second, ok := Locate(path, entity.ReadingProgress{Page: 2, TotalPages: 2})
	require.True(t, ok)
	assert.Equal(t, 2, second.Index)
	assert.InDelta(t, 90, second.Bearing.Degrees(), 0.01)
}
