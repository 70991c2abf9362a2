// Package seed наполняет пустое хранилище демонстрационными инцидентами и пунктами контроля.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/safe_route_system/internal/models"
	"github.com/shenikar/safe_route_system/internal/service"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

//go:embed sample.yaml
var sampleYAML []byte

type Data struct {
	Incidents []*models.Incident `yaml:"incidents"`
	TollGates []*models.TollGate `yaml:"toll_gates"`
}

// Result - сколько записей было добавлено
type Result struct {
	Incidents int
	TollGates int
}

// Sample возвращает встроенный набор данных
func Sample() (*Data, error) {
	return Load(sampleYAML)
}

// Load разбирает набор данных из YAML и проверяет каждую запись
func Load(raw []byte) (*Data, error) {
	data := &Data{}
	if err := yaml.Unmarshal(raw, data); err != nil {
		return nil, fmt.Errorf("seed: could not parse data: %w", err)
	}

	for i, incident := range data.Incidents {
		if err := incident.Coordinate().Validate(); err != nil {
			return nil, fmt.Errorf("seed: incident #%d: %w", i, err)
		}
		if incident.Severity < 1 || incident.Severity > 5 {
			return nil, fmt.Errorf("seed: incident #%d: %w", i, service.ErrInvalidSeverity)
		}
	}
	for i, gate := range data.TollGates {
		if err := gate.Coordinate().Validate(); err != nil {
			return nil, fmt.Errorf("seed: toll gate #%d: %w", i, err)
		}
	}
	return data, nil
}

// Apply добавляет данные в пустые таблицы. Непустые таблицы не трогаются.
func Apply(ctx context.Context, data *Data, incidents service.IncidentRepository, gates service.TollGateRepository, logger *logrus.Logger) (Result, error) {
	log := logger.WithFields(logrus.Fields{
		"service": "seed",
		"method":  "Apply",
	})
	var res Result

	incidentCount, err := incidents.Count(ctx)
	if err != nil {
		return res, fmt.Errorf("seed: could not count incidents: %w", err)
	}
	if incidentCount == 0 {
		now := time.Now().UTC()
		for _, src := range data.Incidents {
			incident := *src
			incident.ID = uuid.New()
			incident.CreatedAt = now
			incident.Anonymous = true
			if err := incidents.Create(ctx, &incident); err != nil {
				return res, fmt.Errorf("seed: could not create incident: %w", err)
			}
			res.Incidents++
		}
	}

	gateCount, err := gates.Count(ctx)
	if err != nil {
		return res, fmt.Errorf("seed: could not count toll gates: %w", err)
	}
	if gateCount == 0 {
		for _, src := range data.TollGates {
			gate := *src
			gate.ID = uuid.New()
			if err := gates.Create(ctx, &gate); err != nil {
				return res, fmt.Errorf("seed: could not create toll gate: %w", err)
			}
			res.TollGates++
		}
	}

	log.WithFields(logrus.Fields{
		"incidents":  res.Incidents,
		"toll_gates": res.TollGates,
	}).Info("Sample data applied")
	return res, nil
}
