package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/safe_route_system/internal/config"
	"github.com/shenikar/safe_route_system/internal/models"
	"github.com/shenikar/safe_route_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=incident.go -destination=mocks/mock_incident.go -package=mocks

var (
	// ErrIncidentNotFound возвращается репозиториями, если инцидента нет
	ErrIncidentNotFound = errors.New("incident not found")
	ErrInvalidSeverity  = errors.New("severity must be between 1 and 5")
	ErrStaleSnapshot    = errors.New("incident snapshot invalidated while loading")
)

// IncidentRepository определяет контракт для работы с бд инцидентов
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	List(ctx context.Context, limit int) ([]*models.Incident, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
	CountBySeverity(ctx context.Context, minSeverity int) (int, error)
}

// IncidentCache - кеш отдельных инцидентов и полного снимка списка.
// Промах кеша возвращается как (nil, nil). GetSnapshot отдает поколение снимка,
// SetSnapshot с устаревшим поколением возвращает ErrStaleSnapshot.
type IncidentCache interface {
	GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	SetIncident(ctx context.Context, incident *models.Incident) error
	GetSnapshot(ctx context.Context) ([]*models.Incident, int64, error)
	SetSnapshot(ctx context.Context, generation int64, incidents []*models.Incident) error
	Invalidate(ctx context.Context, id uuid.UUID) error
}

// IncidentService определяет контракт бизнес-логики сообщений об инцидентах
type IncidentService interface {
	ReportIncident(ctx context.Context, incident *models.Incident) error
	GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	ListIncidents(ctx context.Context) ([]*models.Incident, error)
	DeleteIncident(ctx context.Context, id uuid.UUID) error
}

type incidentService struct {
	repo      IncidentRepository
	cache     IncidentCache
	publisher webhook.AlertPublisher
	logger    *logrus.Logger
	cfg       *config.Config
	now       func() time.Time
}

func NewIncidentService(repo IncidentRepository, cache IncidentCache, publisher webhook.AlertPublisher, logger *logrus.Logger, cfg *config.Config) IncidentService {
	return &incidentService{
		repo:      repo,
		cache:     cache,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
		now:       time.Now,
	}
}

// ReportIncident сохраняет анонимное сообщение об инциденте
func (s *incidentService) ReportIncident(ctx context.Context, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "incident",
		"method":        "ReportIncident",
		"incident_type": incident.Type,
		"severity":      incident.Severity,
	})
	log.Info("Attempting to report a new incident")

	if err := incident.Coordinate().Validate(); err != nil {
		log.WithError(err).Warn("Rejected incident with invalid coordinate")
		return fmt.Errorf("service: could not report incident: %w", err)
	}
	if incident.Severity < 1 || incident.Severity > 5 {
		log.Warn("Rejected incident with invalid severity")
		return fmt.Errorf("service: could not report incident: %w", ErrInvalidSeverity)
	}

	if incident.ID == uuid.Nil {
		incident.ID = uuid.New()
	}
	incident.CreatedAt = s.now().UTC()
	incident.Anonymous = true

	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return fmt.Errorf("service: could not report incident: %w", err)
	}

	if err := s.cache.Invalidate(ctx, incident.ID); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	if incident.Severity >= s.cfg.AlertMinSeverity {
		alert := webhook.IncidentAlert{
			Incident:  incident,
			Severity:  incident.Severity,
			Timestamp: incident.CreatedAt,
		}
		if err := s.publisher.Publish(ctx, alert); err != nil {
			log.WithError(err).Error("Failed to publish incident alert")
		}
	}

	log.WithField("incident_id", incident.ID).Info("Incident reported successfully")
	return nil
}

// GetIncident получает инцидент по ID, сначала из кеша
func (s *incidentService) GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})
	log.Info("Fetching incident by ID")

	cached, err := s.cache.GetIncident(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read incident from cache")
	}
	if cached != nil {
		log.Debug("Incident served from cache")
		return cached, nil
	}

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to get incident in repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	if err := s.cache.SetIncident(ctx, incident); err != nil {
		log.WithError(err).Warn("Failed to cache incident")
	}

	log.Info("Incident fetched successfully")
	return incident, nil
}

// ListIncidents возвращает снимок всех инцидентов (не более IncidentFetchLimit)
func (s *incidentService) ListIncidents(ctx context.Context) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListIncidents",
	})

	cached, generation, err := s.cache.GetSnapshot(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to read incident snapshot from cache")
	}
	if cached != nil {
		log.WithField("count", len(cached)).Debug("Incident snapshot served from cache")
		return cached, nil
	}

	incidents, err := s.repo.List(ctx, s.cfg.IncidentFetchLimit)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	// снимок, прочитанный до нового сообщения, в кеш не попадет
	if err := s.cache.SetSnapshot(ctx, generation, incidents); err != nil {
		if errors.Is(err, ErrStaleSnapshot) {
			log.Debug("Incident snapshot changed while loading, not caching")
		} else {
			log.WithError(err).Warn("Failed to cache incident snapshot")
		}
	}

	log.WithField("count", len(incidents)).Info("Incidents listed successfully")
	return incidents, nil
}

// DeleteIncident удаляет инцидент (административное действие)
func (s *incidentService) DeleteIncident(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "DeleteIncident",
		"incident_id": id,
	})
	log.Info("Attempting to delete incident")

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete incident in repository")
		return fmt.Errorf("service: could not delete incident: %w", err)
	}

	if err := s.cache.Invalidate(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	log.Info("Incident deleted successfully")
	return nil
}
