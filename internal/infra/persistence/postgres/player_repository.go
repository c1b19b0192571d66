package postgres

import (
	"context"

	"gorm.io/gorm"

	"gameapi/internal/domain/entity"
	domainerrors "gameapi/internal/domain/errors"
	"gameapi/internal/domain/repository"
	"gameapi/internal/infra/persistence/model"
)

// playerRepository implements the domain.PlayerRepository interface using GORM.
type playerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository is the constructor for playerRepository.
// It returns the repository as a domain.PlayerRepository interface, adhering to dependency inversion.
func NewPlayerRepository(db *gorm.DB) repository.PlayerRepository {
	return &playerRepository{db: db}
}

func (repo *playerRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.PlayerModel{}).
		Where("player_id = ?", id).
		Count(&count).Error; err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check player id")
	}

	return count > 0, nil
}

// FindByLogin matches the login against both username and email without regard to case.
func (repo *playerRepository) FindByLogin(ctx context.Context, login string) ([]*entity.Player, error) {
	var players []*model.PlayerModel
	if err := repo.db.WithContext(ctx).
		Where("LOWER(username) = LOWER(?) OR LOWER(email) = LOWER(?)", login, login).
		Find(&players).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find player by login")
	}

	return toPlayerDomains(players), nil
}

func (repo *playerRepository) FindByIDAndUsername(ctx context.Context, id, username string) ([]*entity.Player, error) {
	var players []*model.PlayerModel
	if err := repo.db.WithContext(ctx).
		Where("player_id = ? AND username = ?", id, username).
		Find(&players).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find player by id and username")
	}

	return toPlayerDomains(players), nil
}

func (repo *playerRepository) ListAll(ctx context.Context) ([]*entity.Player, error) {
	var players []*model.PlayerModel
	if err := repo.db.WithContext(ctx).
		Order("created").
		Find(&players).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list players")
	}

	return toPlayerDomains(players), nil
}

// Create persists a new player entity to the database.
func (repo *playerRepository) Create(ctx context.Context, player *entity.Player) error {
	playerM := fromPlayerDomain(player)

	if err := repo.db.WithContext(ctx).Create(playerM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrPlayerAlreadyExists.WrapMessage("player id, username or email already taken")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidRequest.WrapMessage("missing required player information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create player")
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

func toPlayerDomain(data *model.PlayerModel) *entity.Player {
	if data == nil {
		return nil
	}

	player := &entity.Player{
		ID:       data.PlayerID,
		Username: data.Username,
		Email:    data.Email,
		Created:  data.Created,
	}
	if data.Password != nil {
		player.PasswordHash = *data.Password
	}
	if data.Salt != nil {
		player.Salt = *data.Salt
	}

	return player
}

func toPlayerDomains(data []*model.PlayerModel) []*entity.Player {
	players := make([]*entity.Player, 0, len(data))
	for _, m := range data {
		players = append(players, toPlayerDomain(m))
	}

	return players
}

func fromPlayerDomain(data *entity.Player) *model.PlayerModel {
	if data == nil {
		return nil
	}

	return &model.PlayerModel{
		PlayerID: data.ID,
		Username: data.Username,
		Password: &data.PasswordHash,
		Salt:     &data.Salt,
		Email:    data.Email,
		Created:  data.Created,
	}
}
