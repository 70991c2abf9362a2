package service

import (
	"context"
	"fmt"

	"github.com/shenikar/safe_route_system/internal/config"
	"github.com/shenikar/safe_route_system/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=tollgate.go -destination=mocks/mock_tollgate.go -package=mocks

// TollGateRepository определяет контракт для работы с бд пунктов контроля
type TollGateRepository interface {
	Create(ctx context.Context, gate *models.TollGate) error
	List(ctx context.Context, limit int) ([]*models.TollGate, error)
	Count(ctx context.Context) (int, error)
}

type TollGateService interface {
	ListTollGates(ctx context.Context) ([]*models.TollGate, error)
}

type tollGateService struct {
	repo   TollGateRepository
	logger *logrus.Logger
	cfg    *config.Config
}

func NewTollGateService(repo TollGateRepository, logger *logrus.Logger, cfg *config.Config) TollGateService {
	return &tollGateService{
		repo:   repo,
		logger: logger,
		cfg:    cfg,
	}
}

// ListTollGates возвращает справочник пунктов контроля
func (s *tollGateService) ListTollGates(ctx context.Context) ([]*models.TollGate, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "tollgate",
		"method":  "ListTollGates",
	})

	gates, err := s.repo.List(ctx, s.cfg.TollGateFetchLimit)
	if err != nil {
		log.WithError(err).Error("Failed to list toll gates from repository")
		return nil, fmt.Errorf("service: could not list toll gates: %w", err)
	}

	log.WithField("count", len(gates)).Debug("Toll gates listed successfully")
	return gates, nil
}
