package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/safe_route_system/internal/geo"
	"github.com/shenikar/safe_route_system/internal/models"
	"github.com/shenikar/safe_route_system/internal/routing"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=route.go -destination=mocks/mock_route.go -package=mocks

// IncidentLister - источник снимка инцидентов для расчета маршрута
type IncidentLister interface {
	ListIncidents(ctx context.Context) ([]*models.Incident, error)
}

// TollGateLister - источник снимка пунктов контроля
type TollGateLister interface {
	ListTollGates(ctx context.Context) ([]*models.TollGate, error)
}

type RouteService interface {
	CalculateRoute(ctx context.Context, start, end geo.Coordinate) (*models.RouteResult, error)
}

type routeService struct {
	incidents IncidentLister
	tollGates TollGateLister
	assembler *routing.Assembler
	stats     StatsRepository
	logger    *logrus.Logger
}

func NewRouteService(incidents IncidentLister, tollGates TollGateLister, assembler *routing.Assembler, stats StatsRepository, logger *logrus.Logger) RouteService {
	return &routeService{
		incidents: incidents,
		tollGates: tollGates,
		assembler: assembler,
		stats:     stats,
		logger:    logger,
	}
}

// CalculateRoute загружает снимки данных и строит безопасный и кратчайший пути
func (s *routeService) CalculateRoute(ctx context.Context, start, end geo.Coordinate) (*models.RouteResult, error) {
	started := time.Now()
	log := s.logger.WithFields(logrus.Fields{
		"service": "route",
		"method":  "CalculateRoute",
		"start":   start.String(),
		"end":     end.String(),
	})

	// координаты проверяем до похода в хранилище
	if err := start.Validate(); err != nil {
		return nil, fmt.Errorf("service: invalid start: %w", err)
	}
	if err := end.Validate(); err != nil {
		return nil, fmt.Errorf("service: invalid end: %w", err)
	}

	var (
		incidents []*models.Incident
		gates     []*models.TollGate
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		incidents, err = s.incidents.ListIncidents(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		gates, err = s.tollGates.ListTollGates(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		log.WithError(err).Error("Failed to load route data")
		return nil, fmt.Errorf("service: could not load route data: %w", err)
	}

	result, err := s.assembler.Compute(start, end, incidents, gates)
	if err != nil {
		log.WithError(err).Warn("Failed to compute route")
		return nil, fmt.Errorf("service: could not compute route: %w", err)
	}

	if err := s.stats.IncrementRoutesCalculated(ctx); err != nil {
		log.WithError(err).Warn("Failed to increment routes counter")
	}

	log.WithFields(logrus.Fields{
		"safety_score":   result.SafetyScore,
		"incident_count": result.IncidentCount,
		"toll_count":     result.TollCount,
		"duration_ms":    time.Since(started).Milliseconds(),
	}).Info("Route calculated successfully")
	return result, nil
}
