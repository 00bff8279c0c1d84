// Package hasher provides one-way password hashing with per-call random
// salts, backed by bcrypt.
package hasher

import "golang.org/x/crypto/bcrypt"

// PasswordHasher defines the interface for password hashing and verification.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) ([]byte, error)

	// Check compares a plaintext password with a stored hash.
	// Returns true if they match.
	Check(password string, hash []byte) bool
}

// Bcrypt implements PasswordHasher using bcrypt. The produced hashes embed
// the algorithm, cost and salt, so stored values remain verifiable across
// cost changes.
type Bcrypt struct {
	cost int
}

// NewBcrypt returns a Bcrypt hasher using the default cost.
func NewBcrypt() *Bcrypt {
	return &Bcrypt{cost: bcrypt.DefaultCost}
}

// Hash generates a salted bcrypt hash of the given password.
func (b *Bcrypt) Hash(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), b.cost)
}

// Check reports whether password matches the stored bcrypt hash.
func (b *Bcrypt) Check(password string, hash []byte) bool {
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}
