package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shenikar/safe_route_system/internal/geo"
	"github.com/shenikar/safe_route_system/internal/models"
	"github.com/shenikar/safe_route_system/internal/routing"
	"github.com/shenikar/safe_route_system/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type routeServiceDeps struct {
	incidents *mocks.MockIncidentLister
	tollGates *mocks.MockTollGateLister
	stats     *mocks.MockStatsRepository
}

func newTestRouteService(t *testing.T) (RouteService, routeServiceDeps) {
	ctrl := gomock.NewController(t)
	deps := routeServiceDeps{
		incidents: mocks.NewMockIncidentLister(ctrl),
		tollGates: mocks.NewMockTollGateLister(ctrl),
		stats:     mocks.NewMockStatsRepository(ctrl),
	}
	service := NewRouteService(deps.incidents, deps.tollGates, routing.NewAssembler(nil), deps.stats, newTestLogger())
	return service, deps
}

func TestCalculateRoute_Success(t *testing.T) {
	service, deps := newTestRouteService(t)
	ctx := context.Background()
	start := geo.Coordinate{Lat: 19.0760, Lng: 72.8777}
	end := geo.Coordinate{Lat: 19.1136, Lng: 72.8697}

	deps.incidents.EXPECT().ListIncidents(gomock.Any()).Return(nil, nil)
	deps.tollGates.EXPECT().ListTollGates(gomock.Any()).Return(nil, nil)
	deps.stats.EXPECT().IncrementRoutesCalculated(ctx).Return(nil)

	result, err := service.CalculateRoute(ctx, start, end)

	require.NoError(t, err)
	assert.Len(t, result.DirectPath, 11)
	assert.Len(t, result.DetourPath, 11)
	// без инцидентов обходной путь совпадает с прямым с точностью до округления
	require.Len(t, result.DirectPath, len(result.DetourPath))
	for i := range result.DetourPath {
		assert.InDelta(t, result.DirectPath[i].Lat, result.DetourPath[i].Lat, 1e-9, "sample %d", i)
		assert.InDelta(t, result.DirectPath[i].Lng, result.DetourPath[i].Lng, 1e-9, "sample %d", i)
	}
	assert.Equal(t, 0, result.IncidentCount)
	assert.InDelta(t, 4.26, result.DistanceKm, 0.05)
	// нет инцидентов и пунктов контроля: только штраф за расстояние
	assert.InDelta(t, 100-0.5*result.DistanceKm, result.SafetyScore, 0.01)
}

func TestCalculateRoute_HighRiskIncidentTriggersDetour(t *testing.T) {
	service, deps := newTestRouteService(t)
	ctx := context.Background()
	start := geo.Coordinate{Lat: 19.00, Lng: 72.80}
	end := geo.Coordinate{Lat: 19.02, Lng: 72.82}
	incidents := []*models.Incident{{Latitude: 19.01, Longitude: 72.81, Severity: 5}}

	deps.incidents.EXPECT().ListIncidents(gomock.Any()).Return(incidents, nil)
	deps.tollGates.EXPECT().ListTollGates(gomock.Any()).Return(nil, nil)
	deps.stats.EXPECT().IncrementRoutesCalculated(ctx).Return(nil)

	result, err := service.CalculateRoute(ctx, start, end)

	require.NoError(t, err)
	assert.NotEqual(t, result.DirectPath, result.DetourPath)
	assert.Equal(t, start, result.DetourPath[0])
	assert.Equal(t, end, result.DetourPath[len(result.DetourPath)-1])
}

func TestCalculateRoute_InvalidCoordinate(t *testing.T) {
	// Хранилище не должно запрашиваться
	service, _ := newTestRouteService(t)

	_, err := service.CalculateRoute(context.Background(),
		geo.Coordinate{Lat: 95, Lng: 0},
		geo.Coordinate{Lat: 0, Lng: 0})

	require.Error(t, err)
	assert.ErrorIs(t, err, geo.ErrInvalidCoordinate)
}

func TestCalculateRoute_DataSourceError(t *testing.T) {
	service, deps := newTestRouteService(t)
	ctx := context.Background()

	deps.incidents.EXPECT().ListIncidents(gomock.Any()).Return(nil, errors.New("db error"))
	deps.tollGates.EXPECT().ListTollGates(gomock.Any()).Return(nil, nil).AnyTimes()

	result, err := service.CalculateRoute(ctx, geo.Coordinate{Lat: 1, Lng: 1}, geo.Coordinate{Lat: 2, Lng: 2})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "could not load route data")
}

func TestCalculateRoute_CounterFailureIsNotFatal(t *testing.T) {
	service, deps := newTestRouteService(t)
	ctx := context.Background()

	deps.incidents.EXPECT().ListIncidents(gomock.Any()).Return(nil, nil)
	deps.tollGates.EXPECT().ListTollGates(gomock.Any()).Return(nil, nil)
	deps.stats.EXPECT().IncrementRoutesCalculated(ctx).Return(errors.New("redis down"))

	result, err := service.CalculateRoute(ctx, geo.Coordinate{Lat: 1, Lng: 1}, geo.Coordinate{Lat: 1, Lng: 1})

	require.NoError(t, err)
	assert.Equal(t, 0.0, result.DistanceKm)
}
