// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"
)

// Player is a registered game account.
type Player struct {
	ID           string    // Opaque 16-char hex identifier, immutable once assigned.
	Username     string    // Unique login name, compared case-insensitively.
	Email        *string   // Optional unique contact address, also accepted as a login identifier.
	PasswordHash string    // Hex PBKDF2 digest of the password with Salt.
	Salt         string    // Hex random salt generated once at registration.
	Created      time.Time // Registration timestamp.
}

// PlayerView is the safe projection of a Player: it never carries the password hash or salt.
type PlayerView struct {
	PlayerID string    `json:"player_id"`
	Username string    `json:"username"`
	Email    *string   `json:"email"`
	Created  time.Time `json:"created"`
}

// View returns the safe projection of the player.
func (p *Player) View() *PlayerView {
	return &PlayerView{
		PlayerID: p.ID,
		Username: p.Username,
		Email:    p.Email,
		Created:  p.Created,
	}
}

// Matches reports whether the view belongs to the given id and username pair.
func (v *PlayerView) Matches(playerID, username string) bool {
	return v.PlayerID == playerID && v.Username == username
}

// NormalizeEmail trims the address and returns nil when nothing is left.
func NormalizeEmail(email *string) *string {
	if email == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*email)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
