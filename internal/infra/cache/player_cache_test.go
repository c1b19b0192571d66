package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"

	"gameapi/config"
	"gameapi/internal/domain/entity"
	"gameapi/internal/domain/repository"
)

func newTestCache(t *testing.T, ttl time.Duration) (*RedisPlayerCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisPlayerCache(client, ttl), mr
}

func TestRedisPlayerCache_SetAndGet(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	ctx := context.Background()
	email := "alice@example.com"
	view := &entity.PlayerView{
		PlayerID: "0123456789abcdef",
		Username: "alice",
		Email:    &email,
		Created:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	require.NoError(t, c.Set(ctx, view))
	assert.True(t, mr.Exists("player:view:0123456789abcdef"))
	assert.Equal(t, time.Minute, mr.TTL("player:view:0123456789abcdef"))

	got, err := c.Get(ctx, "0123456789abcdef")
	require.NoError(t, err)
	assert.Equal(t, view.PlayerID, got.PlayerID)
	assert.Equal(t, view.Username, got.Username)
	assert.Equal(t, email, *got.Email)
	assert.True(t, view.Created.Equal(got.Created))
}

func TestRedisPlayerCache_Miss(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)

	got, err := c.Get(context.Background(), "ffffffffffffffff")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, repository.ErrPlayerCacheMiss)
}

func TestRedisPlayerCache_Delete(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, &entity.PlayerView{PlayerID: "0123456789abcdef", Username: "alice"}))
	require.NoError(t, c.Delete(ctx, "0123456789abcdef"))
	assert.False(t, mr.Exists("player:view:0123456789abcdef"))

	require.NoError(t, c.Delete(ctx, "ffffffffffffffff"))
}

func TestRedisPlayerCache_Expires(t *testing.T) {
	c, mr := newTestCache(t, time.Second)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, &entity.PlayerView{PlayerID: "0123456789abcdef", Username: "alice"}))
	mr.FastForward(2 * time.Second)

	_, err := c.Get(ctx, "0123456789abcdef")
	assert.ErrorIs(t, err, repository.ErrPlayerCacheMiss)
}

func TestRedisPlayerCache_CorruptValue(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	require.NoError(t, mr.Set("player:view:0123456789abcdef", "not-json"))

	_, err := c.Get(context.Background(), "0123456789abcdef")
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrPlayerCacheMiss)
}

func TestRedisPlayerCache_ServerDown(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	c := NewRedisPlayerCache(client, time.Minute)
	mr.Close()

	_, err = c.Get(context.Background(), "0123456789abcdef")
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrPlayerCacheMiss)
}

func TestNoopPlayerCache(t *testing.T) {
	c := NewNoopPlayerCache()

	require.NoError(t, c.Set(context.Background(), &entity.PlayerView{PlayerID: "0123456789abcdef"}))
	require.NoError(t, c.Delete(context.Background(), "0123456789abcdef"))
	_, err := c.Get(context.Background(), "0123456789abcdef")
	assert.ErrorIs(t, err, repository.ErrPlayerCacheMiss)
}

func TestNew_SelectsImplementation(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	disabled := New(Params{Lifecycle: fxtest.NewLifecycle(t), Config: &config.Config{}, Logger: logger})
	assert.IsType(t, &NoopPlayerCache{}, disabled)

	mr := miniredis.RunT(t)
	lc := fxtest.NewLifecycle(t)
	enabled := New(Params{
		Lifecycle: lc,
		Config:    &config.Config{Redis: &config.RedisConfig{Enabled: true, Addr: mr.Addr(), PlayerTTL: time.Minute}},
		Logger:    logger,
	})
	assert.IsType(t, &RedisPlayerCache{}, enabled)

	lc.RequireStart()
	require.NoError(t, enabled.Set(context.Background(), &entity.PlayerView{PlayerID: "0123456789abcdef", Username: "alice"}))
	lc.RequireStop()
}
