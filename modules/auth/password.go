package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost balances brute-force resistance against login latency.
const DefaultBcryptCost = 12

// PasswordHasher produces salted one-way digests of passwords. bcrypt embeds
// a fresh salt per call, so hashing the same password twice yields different
// digests that both verify.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher creates a new PasswordHasher with the default cost.
func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{
		cost: DefaultBcryptCost,
	}
}

// Hash generates a bcrypt digest of the given password.
func (h *PasswordHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether the password matches the digest. A malformed digest
// verifies as false, it never panics.
func (h *PasswordHasher) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
