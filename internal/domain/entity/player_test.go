package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayer_ViewOmitsSecrets(t *testing.T) {
	email := "alice@example.com"
	player := &Player{
		ID:           "0011223344556677",
		Username:     "alice",
		Email:        &email,
		PasswordHash: "hash",
		Salt:         "salt",
		Created:      time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	raw, err := json.Marshal(player.View())
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))

	assert.Equal(t, "0011223344556677", fields["player_id"])
	assert.Equal(t, "alice", fields["username"])
	assert.Equal(t, "alice@example.com", fields["email"])
	assert.NotContains(t, fields, "password")
	assert.NotContains(t, fields, "salt")
	assert.Len(t, fields, 4)
}

func TestPlayerView_Matches(t *testing.T) {
	view := &PlayerView{PlayerID: "0011223344556677", Username: "alice"}

	assert.True(t, view.Matches("0011223344556677", "alice"))
	assert.False(t, view.Matches("0011223344556677", "Alice"))
	assert.False(t, view.Matches("ffffffffffffffff", "alice"))
}

func TestNormalizeEmail(t *testing.T) {
	blank := "   "
	padded := " bob@example.com "

	assert.Nil(t, NormalizeEmail(nil))
	assert.Nil(t, NormalizeEmail(&blank))
	assert.Equal(t, "bob@example.com", *NormalizeEmail(&padded))
}
