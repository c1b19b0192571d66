package postgres

import (
	"context"

	"gorm.io/gorm"

	"gameapi/internal/domain/entity"
	domainerrors "gameapi/internal/domain/errors"
	"gameapi/internal/domain/repository"
	"gameapi/internal/errors"
	"gameapi/internal/infra/persistence/model"
)

// saveRepository implements the domain.SaveRepository interface using GORM.
// Every lookup filters on the owner so foreign saves look exactly like missing ones.
type saveRepository struct {
	db *gorm.DB
}

// NewSaveRepository is the constructor for saveRepository.
func NewSaveRepository(db *gorm.DB) repository.SaveRepository {
	return &saveRepository{db: db}
}

func (repo *saveRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.SaveModel{}).
		Where("save_id = ?", id).
		Count(&count).Error; err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check save id")
	}

	return count > 0, nil
}

func (repo *saveRepository) Create(ctx context.Context, save *entity.SaveDocument) error {
	saveM := model.SaveModel(*save)

	if err := repo.db.WithContext(ctx).Create(&saveM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrSaveOwnerMissing.WrapMessage("save owner " + save.Player + " does not exist")
		}
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrSaveAlreadyExists.WrapMessage("save id already taken")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidRequest.WrapMessage("missing required save information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create save")
	}

	return nil
}

func (repo *saveRepository) FindByIDAndOwner(ctx context.Context, id, playerID string) (*entity.SaveDocument, error) {
	var saveM model.SaveModel
	err := repo.db.WithContext(ctx).
		Where("save_id = ? AND player = ?", id, playerID).
		Take(&saveM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find save")
	}

	save := entity.SaveDocument(saveM)

	return &save, nil
}

func (repo *saveRepository) ListSummariesByOwner(ctx context.Context, playerID string) ([]*entity.SaveSummary, error) {
	var rows []model.SaveSummaryModel
	if err := repo.db.WithContext(ctx).
		Model(&model.SaveModel{}).
		Select("save_id", "saved_at", "zone", "health", "rune_count").
		Where("player = ?", playerID).
		Order("saved_at DESC").
		Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list saves")
	}

	summaries := make([]*entity.SaveSummary, 0, len(rows))
	for _, row := range rows {
		summary := entity.SaveSummary(row)
		summaries = append(summaries, &summary)
	}

	return summaries, nil
}

func (repo *saveRepository) DeleteByIDAndOwner(ctx context.Context, id, playerID string) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("save_id = ? AND player = ?", id, playerID).
		Delete(&model.SaveModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete save")
	}

	return result.RowsAffected, nil
}
