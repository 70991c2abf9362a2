package service

import (
	"context"
	"fmt"

	"github.com/shenikar/safe_route_system/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=stats.go -destination=mocks/mock_stats.go -package=mocks

// StatsRepository - счетчик рассчитанных маршрутов
type StatsRepository interface {
	IncrementRoutesCalculated(ctx context.Context) error
	RoutesCalculated(ctx context.Context) (int64, error)
}

type StatsService interface {
	GetStats(ctx context.Context) (*models.SafetyStats, error)
}

type statsService struct {
	incidents IncidentRepository
	tollGates TollGateRepository
	counter   StatsRepository
	logger    *logrus.Logger
}

func NewStatsService(incidents IncidentRepository, tollGates TollGateRepository, counter StatsRepository, logger *logrus.Logger) StatsService {
	return &statsService{
		incidents: incidents,
		tollGates: tollGates,
		counter:   counter,
		logger:    logger,
	}
}

// GetStats собирает сводную статистику
func (s *statsService) GetStats(ctx context.Context) (*models.SafetyStats, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "stats",
		"method":  "GetStats",
	})

	totalIncidents, err := s.incidents.Count(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to count incidents")
		return nil, fmt.Errorf("service: could not count incidents: %w", err)
	}

	highRisk, err := s.incidents.CountBySeverity(ctx, models.HighRiskSeverity)
	if err != nil {
		log.WithError(err).Error("Failed to count high risk incidents")
		return nil, fmt.Errorf("service: could not count high risk incidents: %w", err)
	}

	totalGates, err := s.tollGates.Count(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to count toll gates")
		return nil, fmt.Errorf("service: could not count toll gates: %w", err)
	}

	routes, err := s.counter.RoutesCalculated(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to read routes counter")
		return nil, fmt.Errorf("service: could not read routes counter: %w", err)
	}

	return &models.SafetyStats{
		TotalIncidents:       totalIncidents,
		TotalTollGates:       totalGates,
		HighRiskAreas:        highRisk,
		SafeRoutesCalculated: routes,
	}, nil
}
