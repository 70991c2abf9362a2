package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/safe_route_system/internal/config"
	"github.com/shenikar/safe_route_system/internal/geo"
	"github.com/shenikar/safe_route_system/internal/models"
	"github.com/shenikar/safe_route_system/internal/service/mocks"
	"github.com/shenikar/safe_route_system/internal/webhook"
	webhook_mocks "github.com/shenikar/safe_route_system/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type incidentServiceDeps struct {
	repo      *mocks.MockIncidentRepository
	cache     *mocks.MockIncidentCache
	publisher *webhook_mocks.MockAlertPublisher
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

// newTestIncidentService - вспомогательная функция для создания инстанса сервиса с моками.
func newTestIncidentService(t *testing.T) (*incidentService, incidentServiceDeps) {
	ctrl := gomock.NewController(t)
	deps := incidentServiceDeps{
		repo:      mocks.NewMockIncidentRepository(ctrl),
		cache:     mocks.NewMockIncidentCache(ctrl),
		publisher: webhook_mocks.NewMockAlertPublisher(ctrl),
	}

	cfg := &config.Config{
		AlertMinSeverity:   4,
		IncidentFetchLimit: 100,
	}

	service := NewIncidentService(deps.repo, deps.cache, deps.publisher, newTestLogger(), cfg).(*incidentService)
	service.now = func() time.Time {
		return time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("IST", 5*3600+1800))
	}
	return service, deps
}

func TestGetIncident_Success_FromCache(t *testing.T) {
	// Подготовка
	service, deps := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	expectedIncident := &models.Incident{ID: incidentID, Type: "harassment"}

	// Ожидания
	deps.cache.EXPECT().
		GetIncident(ctx, incidentID).
		Return(expectedIncident, nil).
		Times(1)

	// Действие
	incident, err := service.GetIncident(ctx, incidentID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedIncident, incident)
}

func TestGetIncident_Success_FromDB(t *testing.T) {
	service, deps := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	expectedIncident := &models.Incident{ID: incidentID, Type: "theft"}

	// 1. Промах кеша
	deps.cache.EXPECT().GetIncident(ctx, incidentID).Return(nil, nil).Times(1)
	// 2. Попадание в БД
	deps.repo.EXPECT().GetByID(ctx, incidentID).Return(expectedIncident, nil).Times(1)
	// 3. Запись в кеш
	deps.cache.EXPECT().SetIncident(ctx, expectedIncident).Return(nil).Times(1)

	incident, err := service.GetIncident(ctx, incidentID)

	require.NoError(t, err)
	assert.Equal(t, expectedIncident, incident)
}

func TestGetIncident_CacheErrorFallsBackToDB(t *testing.T) {
	service, deps := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	expectedIncident := &models.Incident{ID: incidentID}

	deps.cache.EXPECT().GetIncident(ctx, incidentID).Return(nil, errors.New("redis down"))
	deps.repo.EXPECT().GetByID(ctx, incidentID).Return(expectedIncident, nil)
	deps.cache.EXPECT().SetIncident(ctx, expectedIncident).Return(errors.New("redis down"))

	incident, err := service.GetIncident(ctx, incidentID)

	require.NoError(t, err)
	assert.Equal(t, expectedIncident, incident)
}

func TestGetIncident_NotFound(t *testing.T) {
	service, deps := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	deps.cache.EXPECT().GetIncident(ctx, incidentID).Return(nil, nil)
	deps.repo.EXPECT().
		GetByID(ctx, incidentID).
		Return(nil, fmt.Errorf("repository: %w", ErrIncidentNotFound))

	incident, err := service.GetIncident(ctx, incidentID)

	require.Error(t, err)
	assert.Nil(t, incident)
	assert.ErrorIs(t, err, ErrIncidentNotFound)
}

func TestReportIncident_Success(t *testing.T) {
	service, deps := newTestIncidentService(t)
	ctx := context.Background()
	incident := &models.Incident{
		Latitude:  19.0760,
		Longitude: 72.8777,
		Type:      "poor_lighting",
		Severity:  2,
		Anonymous: false,
	}

	deps.repo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			assert.NotEqual(t, uuid.Nil, inc.ID)
			assert.True(t, inc.Anonymous)
			assert.Equal(t, time.UTC, inc.CreatedAt.Location())
			return nil
		}).
		Times(1)
	deps.cache.EXPECT().Invalidate(ctx, gomock.Any()).Return(nil).Times(1)
	// Тяжесть ниже порога: оповещение не отправляется
	deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	err := service.ReportIncident(ctx, incident)

	require.NoError(t, err)
	assert.True(t, incident.Anonymous)
	assert.Equal(t, time.Date(2024, 3, 1, 6, 30, 0, 0, time.UTC), incident.CreatedAt)
}

func TestReportIncident_HighSeverityPublishesAlert(t *testing.T) {
	service, deps := newTestIncidentService(t)
	ctx := context.Background()
	incident := &models.Incident{Latitude: 19.0176, Longitude: 72.8562, Type: "assault", Severity: 5}

	deps.repo.EXPECT().Create(ctx, incident).Return(nil)
	deps.cache.EXPECT().Invalidate(ctx, gomock.Any()).Return(nil)
	deps.publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, alert webhook.IncidentAlert) error {
			assert.Same(t, incident, alert.Incident)
			assert.Equal(t, 5, alert.Severity)
			assert.Equal(t, incident.CreatedAt, alert.Timestamp)
			return nil
		})

	require.NoError(t, service.ReportIncident(ctx, incident))
}

func TestReportIncident_PublishFailureIsNotFatal(t *testing.T) {
	service, deps := newTestIncidentService(t)
	ctx := context.Background()
	incident := &models.Incident{Latitude: 19.0176, Longitude: 72.8562, Type: "assault", Severity: 4}

	deps.repo.EXPECT().Create(ctx, incident).Return(nil)
	deps.cache.EXPECT().Invalidate(ctx, gomock.Any()).Return(errors.New("redis down"))
	deps.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("queue down"))

	assert.NoError(t, service.ReportIncident(ctx, incident))
}

func TestReportIncident_Validation(t *testing.T) {
	tests := []struct {
		name     string
		incident *models.Incident
		wantErr  error
	}{
		{
			name:     "latitude out of range",
			incident: &models.Incident{Latitude: 91, Longitude: 72, Severity: 3},
			wantErr:  geo.ErrInvalidCoordinate,
		},
		{
			name:     "severity too low",
			incident: &models.Incident{Latitude: 19, Longitude: 72, Severity: 0},
			wantErr:  ErrInvalidSeverity,
		},
		{
			name:     "severity too high",
			incident: &models.Incident{Latitude: 19, Longitude: 72, Severity: 6},
			wantErr:  ErrInvalidSeverity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Ни один мок не должен быть вызван
			service, _ := newTestIncidentService(t)

			err := service.ReportIncident(context.Background(), tt.incident)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestReportIncident_RepositoryError(t *testing.T) {
	service, deps := newTestIncidentService(t)
	ctx := context.Background()
	incident := &models.Incident{Latitude: 19, Longitude: 72, Severity: 5}

	deps.repo.EXPECT().Create(ctx, incident).Return(errors.New("db error"))

	err := service.ReportIncident(ctx, incident)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not report incident")
}

func TestListIncidents_FromCache(t *testing.T) {
	service, deps := newTestIncidentService(t)
	ctx := context.Background()
	snapshot := []*models.Incident{{ID: uuid.New()}, {ID: uuid.New()}}

	deps.cache.EXPECT().GetSnapshot(ctx).Return(snapshot, int64(3), nil)

	incidents, err := service.ListIncidents(ctx)

	require.NoError(t, err)
	assert.Equal(t, snapshot, incidents)
}

func TestListIncidents_FromDB(t *testing.T) {
	service, deps := newTestIncidentService(t)
	ctx := context.Background()
	stored := []*models.Incident{{ID: uuid.New()}}

	deps.cache.EXPECT().GetSnapshot(ctx).Return(nil, int64(7), nil)
	deps.repo.EXPECT().List(ctx, 100).Return(stored, nil)
	deps.cache.EXPECT().SetSnapshot(ctx, int64(7), stored).Return(nil)

	incidents, err := service.ListIncidents(ctx)

	require.NoError(t, err)
	assert.Equal(t, stored, incidents)
}

func TestListIncidents_InvalidatedWhileLoading(t *testing.T) {
	service, deps := newTestIncidentService(t)
	ctx := context.Background()
	stored := []*models.Incident{{ID: uuid.New()}}

	deps.cache.EXPECT().GetSnapshot(ctx).Return(nil, int64(1), nil)
	deps.repo.EXPECT().List(ctx, 100).Return(stored, nil)
	deps.cache.EXPECT().SetSnapshot(ctx, int64(1), stored).Return(ErrStaleSnapshot)

	incidents, err := service.ListIncidents(ctx)

	require.NoError(t, err)
	assert.Equal(t, stored, incidents)
}

func TestListIncidents_RepositoryError(t *testing.T) {
	service, deps := newTestIncidentService(t)
	ctx := context.Background()

	deps.cache.EXPECT().GetSnapshot(ctx).Return(nil, int64(0), nil)
	deps.repo.EXPECT().List(ctx, 100).Return(nil, errors.New("db error"))

	incidents, err := service.ListIncidents(ctx)

	require.Error(t, err)
	assert.Nil(t, incidents)
}

func TestDeleteIncident_Success(t *testing.T) {
	service, deps := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	deps.repo.EXPECT().Delete(ctx, incidentID).Return(nil)
	deps.cache.EXPECT().Invalidate(ctx, incidentID).Return(nil)

	assert.NoError(t, service.DeleteIncident(ctx, incidentID))
}

func TestDeleteIncident_NotFound(t *testing.T) {
	service, deps := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	deps.repo.EXPECT().Delete(ctx, incidentID).Return(ErrIncidentNotFound)

	err := service.DeleteIncident(ctx, incidentID)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIncidentNotFound)
}
