package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/safe_route_system/internal/models"
)

const (
	alertQueueKey = "incident_alerts"
)

// IncidentAlert - событие о зарегистрированном тяжелом инциденте
type IncidentAlert struct {
	Incident  *models.Incident `json:"incident"`
	Severity  int              `json:"severity"`
	Timestamp time.Time        `json:"timestamp"`
}

// AlertPublisher - интерфейс для публикации оповещений
//
//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks
type AlertPublisher interface {
	Publish(ctx context.Context, alert IncidentAlert) error
}

// RedisAlertPublisher - реализация AlertPublisher, использующая очередь Redis
type RedisAlertPublisher struct {
	redisClient *redis.Client
}

// NewRedisAlertPublisher создает новый RedisAlertPublisher
func NewRedisAlertPublisher(client *redis.Client) *RedisAlertPublisher {
	return &RedisAlertPublisher{
		redisClient: client,
	}
}

// Publish публикует оповещение в очередь Redis
func (p *RedisAlertPublisher) Publish(ctx context.Context, alert IncidentAlert) error {
	payload, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to marshal incident alert: %w", err)
	}

	// LPUSH в голову списка, воркер забирает с хвоста через BRPOP
	if err := p.redisClient.LPush(ctx, alertQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish incident alert to Redis: %w", err)
	}
	return nil
}

// NopPublisher отбрасывает оповещения (офлайн-режим без Redis)
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, IncidentAlert) error { return nil }
