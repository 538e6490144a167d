package travel

import "locus/internal/domain/entity"

// Locate maps reading progress onto the path and orients along the segment
// starting there. ok is false until both the path and the page count are
// usable.
func Locate(path entity.Path, progress entity.ReadingProgress) (entity.Fix, bool) {
	index, ok := MapProgress(progress.Page, progress.TotalPages, path.Len())
	if !ok {
		return entity.Fix{}, false
	}

	from, to := path[index], path[index+1]

	return entity.Fix{
		Index:    index,
		Position: from,
		Next:     to,
		Bearing:  BearingTo(from, to),
	}, true
}
