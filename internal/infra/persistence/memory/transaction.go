package memory

import (
	"context"

	"gameapi/internal/domain/repository"
	"gameapi/internal/errors"
)

type transactionManager struct {
	store *Store
}

type repositoryFactory struct {
	store *Store
	undo  *undoLog
}

func (f *repositoryFactory) NewPlayerRepository() repository.PlayerRepository {
	return &playerRepository{store: f.store, undo: f.undo}
}

func (f *repositoryFactory) NewSaveRepository() repository.SaveRepository {
	return &saveRepository{store: f.store, undo: f.undo}
}

// NewTransactionManager returns a TransactionManager over the store.
// Transactions run one at a time; a failed callback has its writes reverted.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "transaction not started")
	}

	tm.store.txMu.Lock()
	defer tm.store.txMu.Unlock()

	undo := &undoLog{}
	defer func() {
		if r := recover(); r != nil {
			tm.revert(undo)
			panic(r)
		}
	}()

	if err := fn(&repositoryFactory{store: tm.store, undo: undo}); err != nil {
		tm.revert(undo)

		return err
	}

	return nil
}

func (tm *transactionManager) revert(undo *undoLog) {
	tm.store.mu.Lock()
	defer tm.store.mu.Unlock()

	undo.rollback()
}
