package repository

import (
	"context"

	"gameapi/internal/domain/entity"
)

// SaveRepository persists save documents. Every read and delete is scoped by owner.
type SaveRepository interface {
	ExistsByID(ctx context.Context, id string) (bool, error)

	// Create persists a new save document. A missing owner yields ErrSaveOwnerMissing.
	Create(ctx context.Context, save *entity.SaveDocument) error

	// FindByIDAndOwner returns the matching document, or nil when none matches.
	FindByIDAndOwner(ctx context.Context, id, playerID string) (*entity.SaveDocument, error)

	// ListSummariesByOwner returns the listing projection of every save the player owns, newest first.
	ListSummariesByOwner(ctx context.Context, playerID string) ([]*entity.SaveSummary, error)

	// DeleteByIDAndOwner removes the matching document and returns the number of deleted rows.
	DeleteByIDAndOwner(ctx context.Context, id, playerID string) (int64, error)
}
