package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shenikar/safe_route_system/internal/config"
	"github.com/shenikar/safe_route_system/internal/models"
	"github.com/shenikar/safe_route_system/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListTollGates(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockTollGateRepository(ctrl)
	service := NewTollGateService(repo, newTestLogger(), &config.Config{IncidentFetchLimit: 1000, TollGateFetchLimit: 50})
	ctx := context.Background()

	gates := []*models.TollGate{{Name: "Bandra-Worli Sea Link Toll", Monitored: true}}
	repo.EXPECT().List(ctx, 50).Return(gates, nil)

	got, err := service.ListTollGates(ctx)

	require.NoError(t, err)
	assert.Equal(t, gates, got)
}

func TestListTollGates_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockTollGateRepository(ctrl)
	service := NewTollGateService(repo, newTestLogger(), &config.Config{IncidentFetchLimit: 1000, TollGateFetchLimit: 50})
	ctx := context.Background()

	repo.EXPECT().List(ctx, 50).Return(nil, errors.New("db error"))

	got, err := service.ListTollGates(ctx)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.Contains(t, err.Error(), "could not list toll gates")
}
