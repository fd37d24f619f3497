// Package entity contains the core business objects of the project.
package entity

import (
	"math"

	"github.com/paulmach/orb"
)

// coordinateScale is 10^8: persisted coordinates keep eight decimal places.
const coordinateScale = 1e8

// Coordinate is a WGS84 latitude/longitude pair in degrees.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// IsValid reports whether both components are finite and inside the WGS84 bounds.
func (c Coordinate) IsValid() bool {
	if math.IsNaN(c.Latitude) || math.IsNaN(c.Longitude) ||
		math.IsInf(c.Latitude, 0) || math.IsInf(c.Longitude, 0) {
		return false
	}

	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// Rounded returns the coordinate rounded to eight decimal places, half away from zero.
func (c Coordinate) Rounded() Coordinate {
	return Coordinate{
		Latitude:  RoundCoordinateComponent(c.Latitude),
		Longitude: RoundCoordinateComponent(c.Longitude),
	}
}

// Point converts the coordinate to an orb point (lon, lat order).
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// IsZero reports whether the coordinate is (0, 0), which is how suggestion-only
// locations are represented.
func (c Coordinate) IsZero() bool {
	return c.Latitude == 0 && c.Longitude == 0
}

// RoundCoordinateComponent rounds a single degree value to eight decimal places.
func RoundCoordinateComponent(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}

	return math.Round(v*coordinateScale) / coordinateScale
}
