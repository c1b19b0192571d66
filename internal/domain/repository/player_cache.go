package repository

import (
	"context"
	"errors"

	"gameapi/internal/domain/entity"
)

// ErrPlayerCacheMiss is returned when no view is cached for a player id.
var ErrPlayerCacheMiss = errors.New("player cache miss")

// PlayerCache keeps a write-through copy of safe player views. The store stays
// authoritative: token resolution always re-checks the player there.
type PlayerCache interface {
	// Get returns the cached view or ErrPlayerCacheMiss.
	Get(ctx context.Context, playerID string) (*entity.PlayerView, error)

	// Set stores the view under its player id.
	Set(ctx context.Context, view *entity.PlayerView) error

	// Delete evicts the view. Evicting a missing key is not an error.
	Delete(ctx context.Context, playerID string) error
}
