package memory

import (
	"context"
	"sort"

	"gameapi/internal/domain/entity"
	domainerrors "gameapi/internal/domain/errors"
	"gameapi/internal/domain/repository"
)

type saveRepository struct {
	store *Store
	undo  *undoLog
}

// NewSaveRepository returns a SaveRepository backed by the store.
func NewSaveRepository(store *Store) repository.SaveRepository {
	return &saveRepository{store: store}
}

func (repo *saveRepository) ExistsByID(_ context.Context, id string) (bool, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	_, ok := repo.store.saves[id]

	return ok, nil
}

func (repo *saveRepository) Create(_ context.Context, save *entity.SaveDocument) error {
	if !hasRequiredColumns(save) {
		return domainerrors.ErrInvalidRequest.WrapMessage("missing required save information")
	}

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if _, ok := repo.store.saves[save.SaveID]; ok {
		return domainerrors.ErrSaveAlreadyExists.WrapMessage("save id already taken")
	}
	if _, ok := repo.store.players[save.Player]; !ok {
		return domainerrors.ErrSaveOwnerMissing.WrapMessage("save owner " + save.Player + " does not exist")
	}

	repo.store.saves[save.SaveID] = copySave(save)
	repo.undo.record(func() { delete(repo.store.saves, save.SaveID) })

	return nil
}

func (repo *saveRepository) FindByIDAndOwner(_ context.Context, id, playerID string) (*entity.SaveDocument, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	save, ok := repo.store.saves[id]
	if !ok || save.Player != playerID {
		return nil, nil
	}

	return copySave(save), nil
}

func (repo *saveRepository) ListSummariesByOwner(_ context.Context, playerID string) ([]*entity.SaveSummary, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	summaries := make([]*entity.SaveSummary, 0)
	for _, save := range repo.store.saves {
		if save.Player == playerID {
			summaries = append(summaries, save.Summary())
		}
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].SavedAt.After(summaries[j].SavedAt)
	})

	return summaries, nil
}

func (repo *saveRepository) DeleteByIDAndOwner(_ context.Context, id, playerID string) (int64, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	save, ok := repo.store.saves[id]
	if !ok || save.Player != playerID {
		return 0, nil
	}

	delete(repo.store.saves, id)
	repo.undo.record(func() { repo.store.saves[id] = save })

	return 1, nil
}

// hasRequiredColumns mirrors the NOT NULL columns of the saves table.
func hasRequiredColumns(s *entity.SaveDocument) bool {
	if s.SaveID == "" || s.Zone == "" || s.SavedAt.IsZero() {
		return false
	}
	required := []*float64{
		s.BBPosX, s.BBPosY, s.BBSizeX, s.BBSizeY,
		s.LBBPosX, s.LBBPosY, s.LBBSizeX, s.LBBSizeY,
		s.PosX, s.PosY, s.ScaledSizeX, s.ScaledSizeY,
		s.FirstJumpVel, s.SecondJumpVel, s.Health, s.MaxHealth,
	}
	for _, v := range required {
		if v == nil {
			return false
		}
	}

	return true
}
