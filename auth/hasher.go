package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/user/blogstack-go/apperror"
)

// bcryptCost is the work factor for password hashing. Hashing and
// verification at this cost take tens of milliseconds; callers must treat
// both as blocking.
const bcryptCost = 10

// BcryptHasher performs salted one-way password hashing and verification.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher with the standard cost.
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcryptCost}
}

// Hash derives an opaque digest from a plaintext password. The plaintext
// is never logged or returned.
func (h *BcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", apperror.NewInternalError("failed to hash password", err)
	}
	return string(digest), nil
}

// Verify reports whether the plaintext password matches the stored digest.
// bcrypt recomputes the digest with the stored salt and compares in time
// proportional to the digest, not the plaintext.
func (h *BcryptHasher) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
