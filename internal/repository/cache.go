package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/safe_route_system/internal/models"
	"github.com/shenikar/safe_route_system/internal/service"
)

const (
	snapshotCacheKey      = "incidents:snapshot"
	snapshotGenerationKey = "incidents:snapshot:generation"
)

// RedisIncidentCache хранит инциденты и снимок списка в Redis
type RedisIncidentCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewRedisIncidentCache(redisClient *redis.Client, ttl time.Duration) service.IncidentCache {
	return &RedisIncidentCache{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func incidentCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("incident:%s", id.String())
}

// GetIncident пытается получить инцидент из Redis
func (c *RedisIncidentCache) GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	val, err := c.redisClient.Get(ctx, incidentCacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident from cache: %w", err)
	}

	incident := &models.Incident{}
	if err := json.Unmarshal(val, incident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident from cache: %w", err)
	}
	return incident, nil
}

// SetIncident сохраняет инцидент в Redis
func (c *RedisIncidentCache) SetIncident(ctx context.Context, incident *models.Incident) error {
	val, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident for cache: %w", err)
	}
	if err := c.redisClient.Set(ctx, incidentCacheKey(incident.ID), val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set incident in cache: %w", err)
	}
	return nil
}

// GetSnapshot возвращает закешированный список инцидентов и текущее поколение снимка.
// Поколение нужно передать в SetSnapshot после чтения из бд.
func (c *RedisIncidentCache) GetSnapshot(ctx context.Context) ([]*models.Incident, int64, error) {
	pipe := c.redisClient.Pipeline()
	snapshotCmd := pipe.Get(ctx, snapshotCacheKey)
	generationCmd := pipe.Get(ctx, snapshotGenerationKey)
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, 0, fmt.Errorf("failed to get incident snapshot from cache: %w", err)
	}

	generation, err := generationCmd.Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, 0, fmt.Errorf("failed to parse incident snapshot generation: %w", err)
	}

	val, err := snapshotCmd.Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, generation, nil
		}
		return nil, 0, fmt.Errorf("failed to get incident snapshot from cache: %w", err)
	}

	incidents := make([]*models.Incident, 0)
	if err := json.Unmarshal(val, &incidents); err != nil {
		return nil, 0, fmt.Errorf("failed to unmarshal incident snapshot: %w", err)
	}
	return incidents, generation, nil
}

// SetSnapshot записывает снимок, только если с момента GetSnapshot не было Invalidate.
// Иначе возвращает service.ErrStaleSnapshot.
func (c *RedisIncidentCache) SetSnapshot(ctx context.Context, generation int64, incidents []*models.Incident) error {
	if incidents == nil {
		// пустой снимок кешируем как [], иначе чтение вернет промах
		incidents = []*models.Incident{}
	}
	val, err := json.Marshal(incidents)
	if err != nil {
		return fmt.Errorf("failed to marshal incident snapshot: %w", err)
	}

	err = c.redisClient.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, snapshotGenerationKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != generation {
			return service.ErrStaleSnapshot
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, snapshotCacheKey, val, c.ttl)
			return nil
		})
		return err
	}, snapshotGenerationKey)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, service.ErrStaleSnapshot), errors.Is(err, redis.TxFailedErr):
		return service.ErrStaleSnapshot
	default:
		return fmt.Errorf("failed to set incident snapshot in cache: %w", err)
	}
}

// Invalidate удаляет инцидент и снимок списка из кеша и сдвигает поколение снимка
func (c *RedisIncidentCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	_, err := c.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, incidentCacheKey(id), snapshotCacheKey)
		pipe.Incr(ctx, snapshotGenerationKey)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to invalidate incident cache: %w", err)
	}
	return nil
}

// NopIncidentCache всегда промахивается. Используется в CLI, где Redis нет.
type NopIncidentCache struct{}

func (NopIncidentCache) GetIncident(context.Context, uuid.UUID) (*models.Incident, error) {
	return nil, nil
}

func (NopIncidentCache) SetIncident(context.Context, *models.Incident) error { return nil }

func (NopIncidentCache) GetSnapshot(context.Context) ([]*models.Incident, int64, error) {
	return nil, 0, nil
}

func (NopIncidentCache) SetSnapshot(context.Context, int64, []*models.Incident) error { return nil }

func (NopIncidentCache) Invalidate(context.Context, uuid.UUID) error { return nil }
