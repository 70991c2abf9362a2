package routing

import (
	"fmt"

	"github.com/shenikar/safe_route_system/internal/geo"
	"github.com/shenikar/safe_route_system/internal/models"
)

// Assembler собирает итоговый маршрут из уже загруженных снимков данных.
// Не хранит изменяемого состояния и безопасен для параллельного использования.
type Assembler struct {
	generator *Generator
}

func NewAssembler(strategy DetourStrategy) *Assembler {
	return &Assembler{generator: NewGenerator(strategy)}
}

// Compute строит обходной и прямой пути и оценивает безопасность.
// Близость инцидентов и пунктов контроля считается только по обходному пути.
func (a *Assembler) Compute(start, end geo.Coordinate, incidents []*models.Incident, tollGates []*models.TollGate) (*models.RouteResult, error) {
	if err := start.Validate(); err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	if err := end.Validate(); err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}

	detour := a.generator.Generate(start, end, incidents, ModeDetour)
	direct := a.generator.Generate(start, end, incidents, ModeDirect)

	incidentCount := CountNear(detour, incidentCoordinates(incidents))
	tollCount := CountNear(detour, tollGateCoordinates(tollGates))

	distance := geo.Distance(start, end)

	return &models.RouteResult{
		DetourPath:       detour,
		DirectPath:       direct,
		SafetyScore:      SafetyScore(incidentCount, tollCount, distance),
		DistanceKm:       round2(distance),
		IncidentCount:    incidentCount,
		TollCount:        tollCount,
		EstimatedMinutes: EstimatedMinutes(distance),
	}, nil
}
