package persistence

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"gameapi/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNew_MemoryDriver(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Driver = config.StorageDriverMemory

	repos, err := New(Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	require.NotNil(t, repos.PlayerRepository)
	require.NotNil(t, repos.SaveRepository)
	require.NotNil(t, repos.TransactionManager)

	exists, err := repos.SaveRepository.ExistsByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestNew_UnknownDriver(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Driver = "cassandra"

	_, err := New(Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown storage driver")
}
