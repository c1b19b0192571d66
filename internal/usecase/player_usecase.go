// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"gameapi/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the data required for a player to log in.
// Login may hold either the username or the email address.
type LoginInput struct {
	Login    string
	Password string
}

// RegisterInput defines the data required to register a new player.
type RegisterInput struct {
	Username string
	Password string
	Email    *string
}

// --- Output DTOs ---

// LoginOutput returns the signed token after a successful login.
type LoginOutput struct {
	Token string
}

// RegisterOutput returns the safe view of the newly created player.
type RegisterOutput struct {
	Player *entity.PlayerView
}

// PlayerUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type PlayerUsecase interface {
	// Authenticate checks the credentials and issues a token. Unknown logins and
	// wrong passwords fail with the same error.
	Authenticate(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Register creates a new player with a fresh id, salt and hash.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// ListPlayers returns the safe view of every player.
	ListPlayers(ctx context.Context) ([]*entity.PlayerView, error)

	// ResolveToken verifies the token and returns the player it still represents.
	ResolveToken(ctx context.Context, token string) (*entity.PlayerView, error)
}
