// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for salted password hashing and verification.
// This abstracts the underlying key-derivation function, keeping the domain pure.
type PasswordHasher interface {
	// GenerateSalt returns a fresh random salt for a new account.
	GenerateSalt() (string, error)

	// Hash derives the digest of password with salt. The same pair always yields the same digest.
	Hash(password, salt string) string

	// Verify reports whether password hashed with salt equals hash.
	Verify(password, salt, hash string) bool
}
