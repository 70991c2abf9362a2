package models

// SafetyStats - сводная статистика по инцидентам и расчетам маршрутов
type SafetyStats struct {
	TotalIncidents       int   `json:"total_incidents"`
	TotalTollGates       int   `json:"total_tollgates"`
	HighRiskAreas        int   `json:"high_risk_areas"`
	SafeRoutesCalculated int64 `json:"safe_routes_calculated"`
}
