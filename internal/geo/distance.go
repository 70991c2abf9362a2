package geo

import (
	"math"

	"github.com/golang/geo/s2"
)

// EarthRadiusKm - средний радиус Земли
const EarthRadiusKm = 6371.0

// Distance возвращает расстояние по большому кругу в километрах (формула гаверсинусов).
// Все расчеты расстояний в сервисе идут через эту функцию.
func Distance(a, b Coordinate) float64 {
	p1 := s2.LatLngFromDegrees(a.Lat, a.Lng)
	p2 := s2.LatLngFromDegrees(b.Lat, b.Lng)

	lat1 := p1.Lat.Radians()
	lat2 := p2.Lat.Radians()
	dLat := (p2.Lat - p1.Lat).Radians()
	dLng := (p2.Lng - p1.Lng).Radians()

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

// Within сообщает, что расстояние между точками строго меньше radiusKm
func Within(a, b Coordinate, radiusKm float64) bool {
	return Distance(a, b) < radiusKm
}
