package osrm

import (
	"strconv"
	"strings"

	"locus/internal/domain/entity"

	"github.com/pkg/errors"
)

// ParseCoordinate parses "lat,lng" into a point
func ParseCoordinate(input string) (entity.GeoPoint, error) {
	parts := strings.Split(input, ",")
	if len(parts) != 2 {
		return entity.GeoPoint{}, errors.Errorf("invalid coordinate %q: want \"lat,lng\"", input)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return entity.GeoPoint{}, errors.Wrapf(err, "invalid latitude in %q", input)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return entity.GeoPoint{}, errors.Wrapf(err, "invalid longitude in %q", input)
	}

	point := entity.GeoPoint{Lat: lat, Lng: lng}
	if !point.Valid() {
		return entity.GeoPoint{}, errors.Errorf("coordinate %q is outside valid bounds", input)
	}

	return point, nil
}
