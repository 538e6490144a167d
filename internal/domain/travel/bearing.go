package travel

import (
	"math"

	"locus/internal/domain/entity"

	"github.com/paulmach/orb/geo"
)

// BearingTo returns the great-circle initial bearing from one point to
// another, in [0, 360). Identical points give 0.
func BearingTo(from, to entity.GeoPoint) entity.Bearing {
	if from == to {
		return 0
	}

	// geo.Bearing reports (-180, 180]
	deg := math.Mod(geo.Bearing(from.Point(), to.Point())+360, 360)
	if deg >= 360 || deg < 0 {
		deg = 0
	}

	return entity.Bearing(deg)
}
