package memory

import (
	"context"
	"sort"
	"strings"

	"gameapi/internal/domain/entity"
	domainerrors "gameapi/internal/domain/errors"
	"gameapi/internal/domain/repository"
)

type playerRepository struct {
	store *Store
	undo  *undoLog
}

// NewPlayerRepository returns a PlayerRepository backed by the store.
func NewPlayerRepository(store *Store) repository.PlayerRepository {
	return &playerRepository{store: store}
}

func (repo *playerRepository) ExistsByID(_ context.Context, id string) (bool, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	_, ok := repo.store.players[id]

	return ok, nil
}

func (repo *playerRepository) FindByLogin(_ context.Context, login string) ([]*entity.Player, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	var matches []*entity.Player
	for _, p := range repo.store.players {
		if strings.EqualFold(p.Username, login) || sameFold(login, p.Email) {
			matches = append(matches, copyPlayer(p))
		}
	}

	return matches, nil
}

func (repo *playerRepository) FindByIDAndUsername(_ context.Context, id, username string) ([]*entity.Player, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	p, ok := repo.store.players[id]
	if !ok || p.Username != username {
		return nil, nil
	}

	return []*entity.Player{copyPlayer(p)}, nil
}

func (repo *playerRepository) ListAll(_ context.Context) ([]*entity.Player, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	players := make([]*entity.Player, 0, len(repo.store.players))
	for _, p := range repo.store.players {
		players = append(players, copyPlayer(p))
	}
	sort.Slice(players, func(i, j int) bool {
		if players[i].Created.Equal(players[j].Created) {
			return players[i].ID < players[j].ID
		}

		return players[i].Created.Before(players[j].Created)
	})

	return players, nil
}

func (repo *playerRepository) Create(_ context.Context, player *entity.Player) error {
	if player.ID == "" || player.Username == "" {
		return domainerrors.ErrInvalidRequest.WrapMessage("missing required player information")
	}

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if _, ok := repo.store.players[player.ID]; ok {
		return domainerrors.ErrPlayerAlreadyExists.WrapMessage("player id already taken")
	}
	for _, p := range repo.store.players {
		if strings.EqualFold(p.Username, player.Username) {
			return domainerrors.ErrPlayerAlreadyExists.WrapMessage("username already taken")
		}
		if player.Email != nil && sameFold(*player.Email, p.Email) {
			return domainerrors.ErrPlayerAlreadyExists.WrapMessage("email already taken")
		}
	}

	repo.store.players[player.ID] = copyPlayer(player)
	repo.undo.record(func() { delete(repo.store.players, player.ID) })

	return nil
}
