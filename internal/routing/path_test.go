package routing

import (
	"testing"

	"github.com/shenikar/safe_route_system/internal/geo"
	"github.com/shenikar/safe_route_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_DirectEvenlySpaced(t *testing.T) {
	g := NewGenerator(nil)

	path := g.Generate(geo.Coordinate{}, geo.Coordinate{Lat: 10, Lng: 10}, nil, ModeDirect)

	require.Len(t, path, PathSteps+1)
	for i, p := range path {
		assert.Equal(t, geo.Coordinate{Lat: float64(i), Lng: float64(i)}, p, "sample %d", i)
	}
}

func TestGenerate_EndpointsPinned(t *testing.T) {
	g := NewGenerator(nil)
	severe := []*models.Incident{{Latitude: 19.0948, Longitude: 72.8737, Severity: 5}}

	cases := []struct {
		start, end geo.Coordinate
	}{
		{geo.Coordinate{Lat: 19.0760, Lng: 72.8777}, geo.Coordinate{Lat: 19.1136, Lng: 72.8697}},
		{geo.Coordinate{Lat: 0.3, Lng: -0.7}, geo.Coordinate{Lat: 0.1, Lng: 0.2}},
		{geo.Coordinate{Lat: -33.8688, Lng: 151.2093}, geo.Coordinate{Lat: -33.7, Lng: 151.1}},
	}

	for _, c := range cases {
		for _, mode := range []Mode{ModeDirect, ModeDetour} {
			path := g.Generate(c.start, c.end, severe, mode)
			require.Len(t, path, PathSteps+1)
			assert.Equal(t, c.start, path[0], "%s start", mode)
			assert.Equal(t, c.end, path[PathSteps], "%s end", mode)
		}
	}
}

func TestGenerate_DetourOffsetsMidpointNearSevereIncident(t *testing.T) {
	g := NewGenerator(nil)
	start := geo.Coordinate{Lat: 19.0, Lng: 72.8}
	end := geo.Coordinate{Lat: 19.02, Lng: 72.82}
	mid := geo.Midpoint(start, end)
	incidents := []*models.Incident{{Latitude: mid.Lat, Longitude: mid.Lng, Severity: 4}}

	path := g.Generate(start, end, incidents, ModeDetour)

	assert.InDelta(t, mid.Lat+DetourOffsetDegrees, path[PathSteps/2].Lat, 1e-12)
	assert.InDelta(t, mid.Lng+DetourOffsetDegrees, path[PathSteps/2].Lng, 1e-12)
}

func TestGenerate_LowSeverityNeverTriggersOffset(t *testing.T) {
	g := NewGenerator(nil)
	start := geo.Coordinate{Lat: 19.0, Lng: 72.8}
	end := geo.Coordinate{Lat: 19.02, Lng: 72.82}
	mid := geo.Midpoint(start, end)
	incidents := []*models.Incident{
		{Latitude: mid.Lat, Longitude: mid.Lng, Severity: 3},
		{Latitude: mid.Lat, Longitude: mid.Lng, Severity: 1},
	}

	path := g.Generate(start, end, incidents, ModeDetour)

	assert.InDelta(t, mid.Lat, path[PathSteps/2].Lat, 1e-12)
	assert.InDelta(t, mid.Lng, path[PathSteps/2].Lng, 1e-12)
}

func TestGenerate_OffsetAppliedOnce(t *testing.T) {
	g := NewGenerator(nil)
	start := geo.Coordinate{Lat: 19.0, Lng: 72.8}
	end := geo.Coordinate{Lat: 19.02, Lng: 72.82}
	mid := geo.Midpoint(start, end)
	incidents := []*models.Incident{
		{Latitude: mid.Lat, Longitude: mid.Lng, Severity: 5},
		{Latitude: mid.Lat + 0.001, Longitude: mid.Lng, Severity: 5},
		{Latitude: mid.Lat, Longitude: mid.Lng + 0.001, Severity: 4},
	}

	path := g.Generate(start, end, incidents, ModeDetour)

	assert.InDelta(t, mid.Lat+DetourOffsetDegrees, path[PathSteps/2].Lat, 1e-12)
	assert.InDelta(t, mid.Lng+DetourOffsetDegrees, path[PathSteps/2].Lng, 1e-12)
}

func TestGenerate_DetourWithoutIncidentsFollowsDirectLine(t *testing.T) {
	g := NewGenerator(nil)
	start := geo.Coordinate{Lat: 19.0760, Lng: 72.8777}
	end := geo.Coordinate{Lat: 19.1136, Lng: 72.8697}

	detour := g.Generate(start, end, nil, ModeDetour)
	direct := g.Generate(start, end, nil, ModeDirect)

	require.Len(t, detour, len(direct))
	for i := range detour {
		assert.InDelta(t, direct[i].Lat, detour[i].Lat, 1e-9, "sample %d", i)
		assert.InDelta(t, direct[i].Lng, detour[i].Lng, 1e-9, "sample %d", i)
	}
}

type shiftNorth struct{}

func (shiftNorth) AdjustMidpoint(mid geo.Coordinate, _ []*models.Incident) geo.Coordinate {
	return mid.Offset(1, 0)
}

func TestGenerate_CustomStrategy(t *testing.T) {
	g := NewGenerator(shiftNorth{})

	path := g.Generate(geo.Coordinate{}, geo.Coordinate{Lat: 0, Lng: 10}, nil, ModeDetour)

	assert.Equal(t, geo.Coordinate{Lat: 1, Lng: 5}, path[PathSteps/2])
	assert.Equal(t, geo.Coordinate{}, path[0])
	assert.Equal(t, geo.Coordinate{Lat: 0, Lng: 10}, path[PathSteps])
}
