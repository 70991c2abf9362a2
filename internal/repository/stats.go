package repository

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/safe_route_system/internal/service"
)

const routesCalculatedKey = "stats:safe_routes_calculated"

// RedisStatsRepository хранит счетчик маршрутов в Redis, он общий для всех инстансов
type RedisStatsRepository struct {
	redisClient *redis.Client
}

func NewRedisStatsRepository(redisClient *redis.Client) service.StatsRepository {
	return &RedisStatsRepository{redisClient: redisClient}
}

func (r *RedisStatsRepository) IncrementRoutesCalculated(ctx context.Context) error {
	if err := r.redisClient.Incr(ctx, routesCalculatedKey).Err(); err != nil {
		return fmt.Errorf("failed to increment routes counter: %w", err)
	}
	return nil
}

func (r *RedisStatsRepository) RoutesCalculated(ctx context.Context) (int64, error) {
	count, err := r.redisClient.Get(ctx, routesCalculatedKey).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get routes counter: %w", err)
	}
	return count, nil
}

// LocalStatsCounter - счетчик в памяти процесса
type LocalStatsCounter struct {
	routes atomic.Int64
}

func NewLocalStatsCounter() *LocalStatsCounter {
	return &LocalStatsCounter{}
}

func (c *LocalStatsCounter) IncrementRoutesCalculated(context.Context) error {
	c.routes.Add(1)
	return nil
}

func (c *LocalStatsCounter) RoutesCalculated(context.Context) (int64, error) {
	return c.routes.Load(), nil
}
