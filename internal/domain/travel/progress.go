package travel

import "locus/internal/domain/entity"

// MinPathLength is the fewest points a path needs for a position and a next point
const MinPathLength = 2

// MapProgress converts a 1-based page out of totalPages into an index on a
// path of pathLength points.
//
// Page 1 maps to index 0 and the index grows linearly with
// (pageIndex-1)/totalPages. The result is floored and capped at
// pathLength-2, so index+1 is always a valid point. ok is false when any
// input is outside its domain.
func MapProgress(pageIndex, totalPages, pathLength int) (index int, ok bool) {
	if totalPages < 1 || pathLength < MinPathLength {
		return 0, false
	}
	if pageIndex < 1 || pageIndex > totalPages {
		return 0, false
	}

	// Integer form of floor((pageIndex-1)/totalPages * pathLength); exact for
	// non-negative operands.
	index = (pageIndex - 1) * pathLength / totalPages

	// Only reachable when there are at least as many pages as points.
	if last := pathLength - MinPathLength; index > last {
		index = last
	}

	return index, true
}

// Fraction returns how far through the document the reader is, page/total,
// or 0 while the page count is unknown.
func Fraction(progress entity.ReadingProgress) float64 {
	if progress.TotalPages < 1 {
		return 0
	}

	return float64(progress.Page) / float64(progress.TotalPages)
}
