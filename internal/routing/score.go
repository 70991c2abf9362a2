package routing

import "math"

const (
	baseScore             = 100.0
	incidentPenalty       = 15.0
	tollGateBonus         = 10.0
	distancePenaltyPerKm  = 0.5
	maxDistancePenalty    = 20.0
	AverageSpeedKmPerHour = 40.0
)

// SafetyScore = clamp(100 - 15*I + 10*M - min(0.5*D, 20), 0, 100), округленный до сотых
func SafetyScore(incidents, tollGates int, distanceKm float64) float64 {
	score := baseScore -
		incidentPenalty*float64(incidents) +
		tollGateBonus*float64(tollGates) -
		math.Min(distancePenaltyPerKm*distanceKm, maxDistancePenalty)

	score = math.Max(0, math.Min(baseScore, score))
	return round2(score)
}

// EstimatedMinutes - время в пути при средней скорости 40 км/ч
func EstimatedMinutes(distanceKm float64) int {
	return int(math.Round(distanceKm / AverageSpeedKmPerHour * 60))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
