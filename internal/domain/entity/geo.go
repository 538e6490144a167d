package entity

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// GeoPoint is a position in decimal degrees
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// NewGeoPointFromOrb converts an orb point, which stores longitude first
func NewGeoPointFromOrb(p orb.Point) GeoPoint {
	return GeoPoint{Lat: p.Lat(), Lng: p.Lon()}
}

// Point returns the orb representation of the point
func (p GeoPoint) Point() orb.Point {
	return orb.Point{p.Lng, p.Lat}
}

// Valid reports whether the point is a finite coordinate on Earth
func (p GeoPoint) Valid() bool {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lng) ||
		math.IsInf(p.Lat, 0) || math.IsInf(p.Lng, 0) {
		return false
	}

	return p.Lat >= -90 && p.Lat <= 90 &&
		p.Lng >= -180 && p.Lng <= 180
}

// Path is the ordered route from origin to destination. It is read-only once
// a session holds it.
type Path []GeoPoint

// Len returns the number of points on the path
func (p Path) Len() int {
	return len(p)
}

// LineString returns the path as an orb line string
func (p Path) LineString() orb.LineString {
	ls := make(orb.LineString, len(p))
	for i, pt := range p {
		ls[i] = pt.Point()
	}

	return ls
}

// LengthKm returns the geodesic length of the path in kilometers
func (p Path) LengthKm() float64 {
	if len(p) < 2 {
		return 0
	}

	return geo.Length(p.LineString()) / 1000
}

// Bearing is a compass heading in degrees, 0 = true north, clockwise
type Bearing float64

// Degrees returns the bearing as a plain float
func (b Bearing) Degrees() float64 {
	return float64(b)
}
