// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// Both methods are deliberately CPU-expensive and block the calling goroutine.
type PasswordHasher interface {
	// Hash generates a salted, self-describing hash from a plaintext password.
	// Two calls with the same input return different strings.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash in constant time.
	// A malformed hash is a mismatch, not an error.
	Check(password, hash string) bool
}

// PasswordPolicy decides whether a plaintext password is acceptable for a new account.
type PasswordPolicy interface {
	ValidatePasswordStrength(password string) error
}
