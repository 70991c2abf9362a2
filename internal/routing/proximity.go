package routing

import (
	"github.com/shenikar/safe_route_system/internal/geo"
	"github.com/shenikar/safe_route_system/internal/models"
)

// ProximityThresholdKm - точка считается "рядом" с путем, если ближе этого расстояния
const ProximityThresholdKm = 0.5

// CountNear считает точки, лежащие ближе ProximityThresholdKm хотя бы к одной точке пути.
// Каждая точка учитывается не более одного раза.
func CountNear(path []geo.Coordinate, points []geo.Coordinate) int {
	count := 0
	for _, p := range points {
		for _, sample := range path {
			if geo.Within(sample, p, ProximityThresholdKm) {
				count++
				break
			}
		}
	}
	return count
}

func incidentCoordinates(incidents []*models.Incident) []geo.Coordinate {
	coords := make([]geo.Coordinate, 0, len(incidents))
	for _, inc := range incidents {
		if inc != nil {
			coords = append(coords, inc.Coordinate())
		}
	}
	return coords
}

func tollGateCoordinates(gates []*models.TollGate) []geo.Coordinate {
	coords := make([]geo.Coordinate, 0, len(gates))
	for _, g := range gates {
		if g != nil {
			coords = append(coords, g.Coordinate())
		}
	}
	return coords
}
