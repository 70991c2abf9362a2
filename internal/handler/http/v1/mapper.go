package v1

import (
	"github.com/shenikar/safe_route_system/internal/geo"
	"github.com/shenikar/safe_route_system/internal/models"
)

// DTOToIncidentModel преобразует DTO сообщения в доменную модель.
// Вызывается только после валидации, координаты не nil.
func DTOToIncidentModel(dto CreateIncidentRequest) *models.Incident {
	return &models.Incident{
		Latitude:    *dto.Latitude,
		Longitude:   *dto.Longitude,
		Type:        dto.IncidentType,
		Severity:    dto.Severity,
		Description: dto.Description,
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:           model.ID,
		Latitude:     model.Latitude,
		Longitude:    model.Longitude,
		IncidentType: model.Type,
		Severity:     model.Severity,
		Description:  model.Description,
		Timestamp:    model.CreatedAt,
		Anonymous:    model.Anonymous,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

func ModelsToTollGateResponses(gates []*models.TollGate) []*TollGateResponse {
	responses := make([]*TollGateResponse, len(gates))
	for i, gate := range gates {
		responses[i] = &TollGateResponse{
			ID:        gate.ID,
			Latitude:  gate.Latitude,
			Longitude: gate.Longitude,
			Name:      gate.Name,
			Monitored: gate.Monitored,
		}
	}
	return responses
}

func ModelToRouteResponse(result *models.RouteResult) *RouteResponse {
	return &RouteResponse{
		SafestRoute:      toRoutePoints(result.DetourPath),
		ShortestRoute:    toRoutePoints(result.DirectPath),
		SafetyScore:      result.SafetyScore,
		DistanceKm:       result.DistanceKm,
		IncidentCount:    result.IncidentCount,
		TollCount:        result.TollCount,
		EstimatedTimeMin: result.EstimatedMinutes,
	}
}

func ModelToStatsResponse(stats *models.SafetyStats) *StatsResponse {
	return &StatsResponse{
		TotalIncidents:       stats.TotalIncidents,
		TotalTollGates:       stats.TotalTollGates,
		HighRiskAreas:        stats.HighRiskAreas,
		SafeRoutesCalculated: stats.SafeRoutesCalculated,
	}
}

func toRoutePoints(path []geo.Coordinate) []RoutePoint {
	points := make([]RoutePoint, len(path))
	for i, c := range path {
		points[i] = RoutePoint{Lat: c.Lat, Lng: c.Lng}
	}
	return points
}
