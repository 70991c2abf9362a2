package models

import "github.com/shenikar/safe_route_system/internal/geo"

// RouteResult - результат расчета маршрута, живет в пределах одного запроса
type RouteResult struct {
	DetourPath       []geo.Coordinate `json:"safest_route"`
	DirectPath       []geo.Coordinate `json:"shortest_route"`
	SafetyScore      float64          `json:"safety_score"`
	DistanceKm       float64          `json:"distance_km"`
	IncidentCount    int              `json:"incident_count"`
	TollCount        int              `json:"toll_count"`
	EstimatedMinutes int              `json:"estimated_time_min"`
}
