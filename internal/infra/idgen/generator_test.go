package idgen

import (
	"bytes"
	"context"
	"crypto/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameapi/config"
	domainerrors "gameapi/internal/domain/errors"
	"gameapi/internal/errors"
)

// steppingClock advances by step on every call.
type steppingClock struct {
	current time.Time
	step    time.Duration
	calls   int
}

func (c *steppingClock) now() time.Time {
	c.calls++
	c.current = c.current.Add(c.step)

	return c.current
}

func TestNewGenerator_Timeout(t *testing.T) {
	g, ok := NewGenerator(&config.Config{}).(*generator)
	require.True(t, ok)
	assert.Equal(t, 10*time.Second, g.timeout)

	g, ok = NewGenerator(&config.Config{Auth: &config.AuthConfig{IDGenerationTimeout: time.Second}}).(*generator)
	require.True(t, ok)
	assert.Equal(t, time.Second, g.timeout)
}

func TestGenerator_ReturnsFreeID(t *testing.T) {
	g := NewGenerator(&config.Config{})

	var checked []string
	id, err := g.Generate(context.Background(), func(_ context.Context, id string) (bool, error) {
		checked = append(checked, id)

		return false, nil
	})
	require.NoError(t, err)
	assert.Regexp(t, "^[0-9a-f]{16}$", id)
	assert.Equal(t, []string{id}, checked)
}

func TestGenerator_RetriesOnCollision(t *testing.T) {
	// Two colliding ids, then a free one.
	random := bytes.NewReader([]byte{
		0, 0, 0, 0, 0, 0, 0, 1,
		0, 0, 0, 0, 0, 0, 0, 2,
		0, 0, 0, 0, 0, 0, 0, 3,
	})
	g := &generator{timeout: time.Minute, random: random, now: time.Now}
	taken := map[string]bool{
		"0000000000000001": true,
		"0000000000000002": true,
	}

	id, err := g.Generate(context.Background(), func(_ context.Context, id string) (bool, error) {
		return taken[id], nil
	})
	require.NoError(t, err)
	assert.Equal(t, "0000000000000003", id)
}

func TestGenerator_TimesOutWithinBudget(t *testing.T) {
	clock := &steppingClock{current: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), step: time.Second}
	g := &generator{timeout: 10 * time.Second, random: rand.Reader, now: clock.now}

	attempts := 0
	id, err := g.Generate(context.Background(), func(context.Context, string) (bool, error) {
		attempts++

		return true, nil
	})
	assert.Empty(t, id)
	assert.ErrorIs(t, err, domainerrors.ErrIDGenerationFailed)
	// The first reading is the start time; every attempt reads the clock once more.
	assert.Equal(t, 10, attempts)
}

func TestGenerator_StoreErrorStopsImmediately(t *testing.T) {
	g := NewGenerator(&config.Config{})
	storeErr := errors.New("connection refused")

	attempts := 0
	id, err := g.Generate(context.Background(), func(context.Context, string) (bool, error) {
		attempts++

		return false, storeErr
	})
	assert.Empty(t, id)
	assert.ErrorIs(t, err, storeErr)
	assert.Equal(t, 1, attempts)
}

func TestGenerator_ContextCancelled(t *testing.T) {
	g := NewGenerator(&config.Config{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	id, err := g.Generate(ctx, func(context.Context, string) (bool, error) {
		t.Fatal("existence check must not run after cancellation")

		return false, nil
	})
	assert.Empty(t, id)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerator_RandomReadError(t *testing.T) {
	g := &generator{timeout: time.Minute, random: bytes.NewReader(nil), now: time.Now}

	id, err := g.Generate(context.Background(), func(context.Context, string) (bool, error) {
		return false, nil
	})
	assert.Empty(t, id)
	assert.Error(t, err)
}
