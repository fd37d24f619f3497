package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordinate_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		coord Coordinate
		want  bool
	}{
		{"origin", Coordinate{0, 0}, true},
		{"new york", Coordinate{40.748817, -73.985428}, true},
		{"north pole", Coordinate{90, 0}, true},
		{"antimeridian", Coordinate{0, -180}, true},
		{"latitude too large", Coordinate{90.0001, 0}, false},
		{"longitude too small", Coordinate{0, -180.5}, false},
		{"NaN latitude", Coordinate{math.NaN(), 0}, false},
		{"infinite longitude", Coordinate{0, math.Inf(1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.coord.IsValid())
		})
	}
}

func TestCoordinate_Rounded(t *testing.T) {
	rounded := Coordinate{Latitude: 40.7415634999, Longitude: -73.98542849999}.Rounded()

	assert.Equal(t, 40.7415635, rounded.Latitude)
	assert.Equal(t, -73.9854285, rounded.Longitude)
}

func TestRoundCoordinateComponent_HalfAwayFromZero(t *testing.T) {
	assert.Equal(t, 1.00000001, RoundCoordinateComponent(1.000000005000001))
	assert.Equal(t, -1.00000001, RoundCoordinateComponent(-1.000000005000001))
	assert.Equal(t, 12.5, RoundCoordinateComponent(12.5))
	assert.True(t, math.IsNaN(RoundCoordinateComponent(math.NaN())))
}

func TestCoordinate_Point(t *testing.T) {
	p := Coordinate{Latitude: 25.033, Longitude: 121.5654}.Point()

	assert.Equal(t, 121.5654, p.Lon())
	assert.Equal(t, 25.033, p.Lat())
}
