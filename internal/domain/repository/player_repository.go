// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"gameapi/internal/domain/entity"
)

// PlayerRepository defines the standard operations for player persistence.
// The application layer will depend on this interface, not the concrete implementation.
type PlayerRepository interface {
	// ExistsByID reports whether a player with the given id is stored.
	ExistsByID(ctx context.Context, id string) (bool, error)

	// FindByLogin returns every player whose username or email equals login, ignoring case.
	// Callers decide what zero or several matches mean.
	FindByLogin(ctx context.Context, login string) ([]*entity.Player, error)

	// FindByIDAndUsername returns every player matching both the id and the username.
	FindByIDAndUsername(ctx context.Context, id, username string) ([]*entity.Player, error)

	// ListAll returns every stored player ordered by creation time.
	ListAll(ctx context.Context) ([]*entity.Player, error)

	// Create persists a new player. A duplicate id, username or email yields a conflict error.
	Create(ctx context.Context, player *entity.Player) error
}
