package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for player tokens.
type Claims struct {
	Username string `json:"username"`
	PlayerID string `json:"player_id"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying player tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue signs a token binding the username and player id.
	// It fails with ErrMissingClaims when either one is empty.
	Issue(username, playerID string) (string, error)

	// Verify checks the token and returns its claims.
	// Every failure is a *errors.TokenError carrying one of the ABS, EXP, EAR or INV codes.
	Verify(token string) (*Claims, error)
}
