package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateIncidentRequest DTO для анонимного сообщения об инциденте
// @Description DTO для анонимного сообщения об инциденте
type CreateIncidentRequest struct {
	Latitude     *float64 `json:"lat" validate:"required,latitude"`
	Longitude    *float64 `json:"lng" validate:"required,longitude"`
	IncidentType string   `json:"incident_type" validate:"required,min=2,max=64"`
	Severity     int      `json:"severity" validate:"required,min=1,max=5"`
	Description  string   `json:"description,omitempty" validate:"max=1000"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID           uuid.UUID `json:"id"`
	Latitude     float64   `json:"lat"`
	Longitude    float64   `json:"lng"`
	IncidentType string    `json:"incident_type"`
	Severity     int       `json:"severity"`
	Description  string    `json:"description,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
	Anonymous    bool      `json:"anonymous"`
}

// TollGateResponse DTO пункта контроля
type TollGateResponse struct {
	ID        uuid.UUID `json:"id"`
	Latitude  float64   `json:"lat"`
	Longitude float64   `json:"lng"`
	Name      string    `json:"name"`
	Monitored bool      `json:"monitored"`
}

// RouteRequest DTO запроса на расчет маршрута. Указатели позволяют принять нулевые координаты.
// @Description DTO запроса на расчет маршрута
type RouteRequest struct {
	StartLat *float64 `json:"start_lat" validate:"required,latitude"`
	StartLng *float64 `json:"start_lng" validate:"required,longitude"`
	EndLat   *float64 `json:"end_lat" validate:"required,latitude"`
	EndLng   *float64 `json:"end_lng" validate:"required,longitude"`
}

type RoutePoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// RouteResponse DTO результата расчета маршрута
// @Description DTO результата расчета маршрута
type RouteResponse struct {
	SafestRoute      []RoutePoint `json:"safest_route"`
	ShortestRoute    []RoutePoint `json:"shortest_route"`
	SafetyScore      float64      `json:"safety_score"`
	DistanceKm       float64      `json:"distance_km"`
	IncidentCount    int          `json:"incident_count"`
	TollCount        int          `json:"toll_count"`
	EstimatedTimeMin int          `json:"estimated_time_min"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	TotalIncidents       int   `json:"total_incidents"`
	TotalTollGates       int   `json:"total_tollgates"`
	HighRiskAreas        int   `json:"high_risk_areas"`
	SafeRoutesCalculated int64 `json:"safe_routes_calculated"`
}
