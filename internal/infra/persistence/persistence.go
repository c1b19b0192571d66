// Package persistence selects the storage driver and provides the repositories built on it.
package persistence

import (
	"log/slog"

	"gameapi/config"
	"gameapi/internal/domain/repository"
	"gameapi/internal/errors"
	"gameapi/internal/infra/persistence/memory"
	"gameapi/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories is the set of stores shared by the use cases.
type Repositories struct {
	fx.Out

	PlayerRepository   repository.PlayerRepository
	SaveRepository     repository.SaveRepository
	TransactionManager repository.TransactionManager
}

// New builds the repositories for the configured storage driver.
func New(params Params) (Repositories, error) {
	switch params.Config.Storage.Driver {
	case config.StorageDriverMemory:
		params.Logger.Warn("Using in-memory storage, data is lost on restart")
		store := memory.NewStore()

		return Repositories{
			PlayerRepository:   memory.NewPlayerRepository(store),
			SaveRepository:     memory.NewSaveRepository(store),
			TransactionManager: memory.NewTransactionManager(store),
		}, nil

	case config.StorageDriverPostgres, "":
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			PlayerRepository:   postgres.NewPlayerRepository(db),
			SaveRepository:     postgres.NewSaveRepository(db),
			TransactionManager: postgres.NewTransactionManager(db),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown storage driver: %s", params.Config.Storage.Driver)
	}
}
