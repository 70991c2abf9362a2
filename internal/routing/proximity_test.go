package routing

import (
	"testing"

	"github.com/shenikar/safe_route_system/internal/geo"
	"github.com/stretchr/testify/assert"
)

func TestCountNear_CountsEachPointOnce(t *testing.T) {
	// все точки пути в пределах ~100 м от инцидента
	path := []geo.Coordinate{
		{Lat: 19.0000, Lng: 72.8000},
		{Lat: 19.0002, Lng: 72.8000},
		{Lat: 19.0004, Lng: 72.8000},
		{Lat: 19.0006, Lng: 72.8000},
	}
	points := []geo.Coordinate{{Lat: 19.0003, Lng: 72.8000}}

	assert.Equal(t, 1, CountNear(path, points))
}

func TestCountNear_ThresholdIsStrict(t *testing.T) {
	path := []geo.Coordinate{{Lat: 0, Lng: 0}}
	near := geo.Coordinate{Lat: 0.004, Lng: 0} // ~0.445 км
	far := geo.Coordinate{Lat: 0.0046, Lng: 0} // ~0.511 км
	edge := geo.Coordinate{Lat: 0.01, Lng: 0}  // ~1.1 км

	assert.Equal(t, 1, CountNear(path, []geo.Coordinate{near, far, edge}))
}

func TestCountNear_Empty(t *testing.T) {
	path := []geo.Coordinate{{Lat: 0, Lng: 0}}

	assert.Zero(t, CountNear(path, nil))
	assert.Zero(t, CountNear(nil, []geo.Coordinate{{Lat: 0, Lng: 0}}))
}

func TestCountNear_MultiplePoints(t *testing.T) {
	path := []geo.Coordinate{{Lat: 0, Lng: 0}, {Lat: 0, Lng: 0.1}}
	points := []geo.Coordinate{
		{Lat: 0.001, Lng: 0},
		{Lat: 0, Lng: 0.101},
		{Lat: 0, Lng: 0.05},
	}

	assert.Equal(t, 2, CountNear(path, points))
}
