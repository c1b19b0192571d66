package auth

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPBKDF2Hasher_GenerateSalt(t *testing.T) {
	hasher := NewPBKDF2Hasher()

	first, err := hasher.GenerateSalt()
	require.NoError(t, err)
	second, err := hasher.GenerateSalt()
	require.NoError(t, err)

	// 64 random bytes, hex encoded
	assert.Len(t, first, 128)
	assert.Regexp(t, "^[0-9a-f]+$", first)
	assert.NotEqual(t, first, second)
}

func TestPBKDF2Hasher_GenerateSaltReadError(t *testing.T) {
	hasher := &pbkdf2Hasher{random: bytes.NewReader([]byte{1, 2, 3})}

	salt, err := hasher.GenerateSalt()
	assert.Error(t, err)
	assert.Empty(t, salt)
}

func TestPBKDF2Hasher_HashIsDeterministic(t *testing.T) {
	hasher := NewPBKDF2Hasher()
	salt, err := hasher.GenerateSalt()
	require.NoError(t, err)

	first := hasher.Hash("hunter2", salt)
	second := hasher.Hash("hunter2", salt)

	assert.Equal(t, first, second)
	assert.Len(t, first, 128)
	assert.NotEqual(t, "hunter2", first)
}

// The digest below was produced by Node's crypto.pbkdf2Sync(password, salt, 10000, 64, "sha512")
// with the salt passed as its hex text, the way existing player rows were hashed.
func TestPBKDF2Hasher_HashMatchesStoredRows(t *testing.T) {
	hasher := NewPBKDF2Hasher()
	salt := "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08" +
		"00112233445566778899aabbccddeeff00112233445566778899aabbccddeeff"
	want := "179a545094b8015b853e8feed892921259baf0d64b689eab95cf686b43c3c2e8" +
		"8f83ecb620de4a8967dca833e6ff703654fe451457251cb9468aacc4cbda988b"

	assert.Equal(t, want, hasher.Hash("pw1", salt))
	assert.True(t, hasher.Verify("pw1", salt, want))
	assert.False(t, hasher.Verify("pw2", salt, want))
}

func TestPBKDF2Hasher_HashDependsOnSaltAndPassword(t *testing.T) {
	hasher := NewPBKDF2Hasher()

	base := hasher.Hash("pw1", "salt-a")
	assert.NotEqual(t, base, hasher.Hash("pw1", "salt-b"))
	assert.NotEqual(t, base, hasher.Hash("pw2", "salt-a"))
}

func TestPBKDF2Hasher_Verify(t *testing.T) {
	hasher := NewPBKDF2Hasher()
	salt, err := hasher.GenerateSalt()
	require.NoError(t, err)
	hash := hasher.Hash("pw1", salt)

	tests := []struct {
		name     string
		password string
		salt     string
		hash     string
		want     bool
	}{
		{name: "matching password", password: "pw1", salt: salt, hash: hash, want: true},
		{name: "wrong password", password: "pw2", salt: salt, hash: hash, want: false},
		{name: "wrong salt", password: "pw1", salt: "other", hash: hash, want: false},
		{name: "empty hash", password: "pw1", salt: salt, hash: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hasher.Verify(tt.password, tt.salt, tt.hash))
		})
	}
}
