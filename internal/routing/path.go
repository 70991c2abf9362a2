package routing

import (
	"github.com/shenikar/safe_route_system/internal/geo"
	"github.com/shenikar/safe_route_system/internal/models"
)

const (
	// PathSteps - число интервалов пути; путь состоит из PathSteps+1 точек
	PathSteps = 10

	DetourTriggerRadiusKm = 1.0
	DetourOffsetDegrees   = 0.01
)

// Mode - режим построения пути
type Mode int

const (
	ModeDirect Mode = iota
	ModeDetour
)

func (m Mode) String() string {
	if m == ModeDetour {
		return "detour"
	}
	return "direct"
}

// DetourStrategy решает, куда сместить середину обходного пути
type DetourStrategy interface {
	AdjustMidpoint(mid geo.Coordinate, incidents []*models.Incident) geo.Coordinate
}

// FixedOffset сдвигает середину на фиксированное число градусов, если рядом с ней есть
// тяжелый инцидент. Направление сдвига не зависит от положения инцидента: это эвристика,
// а не алгоритм обхода препятствий.
type FixedOffset struct {
	RadiusKm    float64
	MinSeverity int
	OffsetLat   float64
	OffsetLng   float64
}

// DefaultDetour - +0.01°/+0.01° при инциденте тяжестью >= 4 в пределах 1 км
func DefaultDetour() FixedOffset {
	return FixedOffset{
		RadiusKm:    DetourTriggerRadiusKm,
		MinSeverity: models.HighRiskSeverity,
		OffsetLat:   DetourOffsetDegrees,
		OffsetLng:   DetourOffsetDegrees,
	}
}

func (f FixedOffset) AdjustMidpoint(mid geo.Coordinate, incidents []*models.Incident) geo.Coordinate {
	for _, inc := range incidents {
		if inc == nil || inc.Severity < f.MinSeverity {
			continue
		}
		// срабатывает только первый подходящий инцидент
		if geo.Within(mid, inc.Coordinate(), f.RadiusKm) {
			return mid.Offset(f.OffsetLat, f.OffsetLng)
		}
	}
	return mid
}

// Generator строит прямой и обходной пути из PathSteps+1 точек
type Generator struct {
	strategy DetourStrategy
}

// NewGenerator создает генератор; nil означает стратегию по умолчанию
func NewGenerator(strategy DetourStrategy) *Generator {
	if strategy == nil {
		strategy = DefaultDetour()
	}
	return &Generator{strategy: strategy}
}

// Generate возвращает путь от start до end. Первая и последняя точки всегда
// в точности равны start и end.
func (g *Generator) Generate(start, end geo.Coordinate, incidents []*models.Incident, mode Mode) []geo.Coordinate {
	points := make([]geo.Coordinate, PathSteps+1)

	switch mode {
	case ModeDetour:
		mid := g.strategy.AdjustMidpoint(geo.Midpoint(start, end), incidents)
		half := PathSteps / 2
		for i := 0; i < half; i++ {
			points[i] = geo.Lerp(start, mid, i, half)
		}
		for i := half; i <= PathSteps; i++ {
			points[i] = geo.Lerp(mid, end, i-half, PathSteps-half)
		}
	default:
		for i := 0; i <= PathSteps; i++ {
			points[i] = geo.Lerp(start, end, i, PathSteps)
		}
	}

	points[0] = start
	points[PathSteps] = end
	return points
}
