// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"io"

	"golang.org/x/crypto/pbkdf2"

	"gameapi/internal/domain/service"
	"gameapi/internal/errors"
)

const (
	pbkdf2Iterations = 10000
	pbkdf2KeyLength  = 64
	saltLength       = 64
)

// pbkdf2Hasher is a concrete implementation of the PasswordHasher interface using PBKDF2-SHA512.
// Salts and digests are hex strings, and the KDF consumes the salt's hex text so stored rows keep verifying.
type pbkdf2Hasher struct {
	random io.Reader
}

// NewPBKDF2Hasher is the constructor for pbkdf2Hasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewPBKDF2Hasher() service.PasswordHasher {
	return &pbkdf2Hasher{random: rand.Reader}
}

// GenerateSalt returns 64 random bytes, hex encoded.
func (h *pbkdf2Hasher) GenerateSalt() (string, error) {
	buf := make([]byte, saltLength)
	if _, err := io.ReadFull(h.random, buf); err != nil {
		return "", errors.Wrap(err, "read random salt")
	}

	return hex.EncodeToString(buf), nil
}

// Hash derives the hex digest of password with salt.
func (h *pbkdf2Hasher) Hash(password, salt string) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), pbkdf2Iterations, pbkdf2KeyLength, sha512.New)

	return hex.EncodeToString(key)
}

// Verify compares digests in constant time.
func (h *pbkdf2Hasher) Verify(password, salt, hash string) bool {
	computed := h.Hash(password, salt)

	return subtle.ConstantTimeCompare([]byte(computed), []byte(hash)) == 1
}
