package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/ccltech/tienda-api/internal/application/usecase"
	"github.com/ccltech/tienda-api/pkg/config"
)

var _ usecase.FacetCache = (*RedisCache)(nil)

// RedisCache caché de facetas sobre Redis. Un miss devuelve (nil, nil); el
// consumidor decide recalcular.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache conecta contra cfg.Addr y verifica la conexión con un ping.
func NewRedisCache(ctx context.Context, cfg config.RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("conectar a redis: %w", err)
	}
	return &RedisCache{client: client}, nil
}

// Get devuelve el valor cacheado o (nil, nil) si la clave no existe.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}
	return val, nil
}

// Set guarda el valor con la vigencia dada.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Close cierra la conexión subyacente.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
