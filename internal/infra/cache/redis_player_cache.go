// Package cache keeps a write-through copy of safe player views in Redis.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"gameapi/internal/domain/entity"
	"gameapi/internal/domain/repository"
	"gameapi/internal/errors"
)

const playerKeyPrefix = "player:view:"

// RedisPlayerCache stores player views as JSON under player:view:<id>.
type RedisPlayerCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisPlayerCache wraps a go-redis client.
func NewRedisPlayerCache(client redis.UniversalClient, ttl time.Duration) *RedisPlayerCache {
	return &RedisPlayerCache{client: client, ttl: ttl}
}

// Get returns the cached view or repository.ErrPlayerCacheMiss.
func (c *RedisPlayerCache) Get(ctx context.Context, playerID string) (*entity.PlayerView, error) {
	raw, err := c.client.Get(ctx, playerKey(playerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrPlayerCacheMiss
		}

		return nil, errors.Wrap(err, "redis get player view")
	}

	var view entity.PlayerView
	if err := json.Unmarshal(raw, &view); err != nil {
		return nil, errors.Wrap(err, "decode cached player view")
	}

	return &view, nil
}

// Set stores the view with the configured TTL.
func (c *RedisPlayerCache) Set(ctx context.Context, view *entity.PlayerView) error {
	raw, err := json.Marshal(view)
	if err != nil {
		return errors.Wrap(err, "encode player view")
	}
	if err := c.client.Set(ctx, playerKey(view.PlayerID), raw, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "redis set player view")
	}

	return nil
}

// Delete evicts the view of a player.
func (c *RedisPlayerCache) Delete(ctx context.Context, playerID string) error {
	if err := c.client.Del(ctx, playerKey(playerID)).Err(); err != nil {
		return errors.Wrap(err, "redis delete player view")
	}

	return nil
}

func playerKey(playerID string) string {
	return playerKeyPrefix + playerID
}

// NoopPlayerCache is used when Redis is disabled. Every lookup misses.
type NoopPlayerCache struct{}

// NewNoopPlayerCache creates a cache that stores nothing.
func NewNoopPlayerCache() *NoopPlayerCache {
	return &NoopPlayerCache{}
}

func (NoopPlayerCache) Get(context.Context, string) (*entity.PlayerView, error) {
	return nil, repository.ErrPlayerCacheMiss
}

func (NoopPlayerCache) Set(context.Context, *entity.PlayerView) error {
	return nil
}

func (NoopPlayerCache) Delete(context.Context, string) error {
	return nil
}
