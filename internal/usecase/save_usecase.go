package usecase

import (
	"context"

	"gameapi/internal/domain/entity"
)

// CreateSaveOutput returns the id assigned to a new save.
type CreateSaveOutput struct {
	SaveID string
}

// SaveUsecase defines save-document operations. Every operation first resolves the
// bearer token, and every read or delete is scoped to the resolved player.
type SaveUsecase interface {
	CreateSave(ctx context.Context, token string, snapshot *entity.Snapshot) (*CreateSaveOutput, error)
	GetSave(ctx context.Context, token, saveID string) (*entity.SaveDocument, error)

	// ListSaves fails with ErrNoSavesFound when the player has none.
	ListSaves(ctx context.Context, token string) ([]*entity.SaveSummary, error)
	DeleteSave(ctx context.Context, token, saveID string) error
}
