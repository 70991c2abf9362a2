package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance_Symmetric(t *testing.T) {
	pairs := [][2]Coordinate{
		{{Lat: 19.0760, Lng: 72.8777}, {Lat: 19.1136, Lng: 72.8697}},
		{{Lat: -33.8688, Lng: 151.2093}, {Lat: 51.5074, Lng: -0.1278}},
		{{Lat: 0, Lng: 179.9}, {Lat: 0, Lng: -179.9}},
		{{Lat: 89.5, Lng: 10}, {Lat: -89.5, Lng: -170}},
	}

	for _, p := range pairs {
		assert.Equal(t, Distance(p[0], p[1]), Distance(p[1], p[0]), "pair %v", p)
	}
}

func TestDistance_SamePointIsZero(t *testing.T) {
	c := Coordinate{Lat: 19.0760, Lng: 72.8777}
	assert.Equal(t, 0.0, Distance(c, c))
}

func TestDistance_OneDegreeLatitude(t *testing.T) {
	// 1 градус широты = R * π / 180
	expected := EarthRadiusKm * math.Pi / 180

	d := Distance(Coordinate{Lat: 10, Lng: 20}, Coordinate{Lat: 11, Lng: 20})

	assert.InDelta(t, expected, d, 0.5)
	assert.InDelta(t, 111.19, d, 0.5)
}

func TestDistance_KnownCityPair(t *testing.T) {
	// Мумбаи, центр -> север
	d := Distance(Coordinate{Lat: 19.0760, Lng: 72.8777}, Coordinate{Lat: 19.1136, Lng: 72.8697})
	assert.InDelta(t, 4.26, d, 0.05)
}

func TestWithin_IsStrict(t *testing.T) {
	a := Coordinate{Lat: 0, Lng: 0}
	b := Coordinate{Lat: 0.001, Lng: 0}
	d := Distance(a, b)

	assert.True(t, Within(a, b, d+1e-9))
	assert.False(t, Within(a, b, d))
}

func TestNewCoordinate(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lng     float64
		wantErr bool
	}{
		{name: "origin", lat: 0, lng: 0},
		{name: "bounds", lat: 90, lng: -180},
		{name: "negative bounds", lat: -90, lng: 180},
		{name: "latitude too high", lat: 90.0001, lng: 0, wantErr: true},
		{name: "longitude too low", lat: 0, lng: -180.5, wantErr: true},
		{name: "NaN latitude", lat: math.NaN(), lng: 0, wantErr: true},
		{name: "infinite longitude", lat: 0, lng: math.Inf(1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCoordinate(tt.lat, tt.lng)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidCoordinate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, Coordinate{Lat: tt.lat, Lng: tt.lng}, c)
		})
	}
}

func TestLerp_Endpoints(t *testing.T) {
	a := Coordinate{Lat: 19.0760, Lng: 72.8777}
	b := Coordinate{Lat: 19.1136, Lng: 72.8697}

	assert.Equal(t, a, Lerp(a, b, 0, 10))
	assert.Equal(t, Coordinate{Lat: 5, Lng: 5}, Lerp(Coordinate{}, Coordinate{Lat: 10, Lng: 10}, 5, 10))
}

func TestMidpoint(t *testing.T) {
	m := Midpoint(Coordinate{Lat: 0, Lng: 0}, Coordinate{Lat: 10, Lng: -20})
	assert.Equal(t, Coordinate{Lat: 5, Lng: -10}, m)
}
