package service

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/launchhub/business-portal/internal/core/domain"
)

// hashCost is the fixed bcrypt work factor.
const hashCost = 10

// HashPassword applies a salted, slow one-way hash to a plaintext password.
func HashPassword(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), hashCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// VerifyPassword recomputes and compares in constant time. A wrong password
// is a normal negative result, and a malformed digest surfaces as the same
// generic failure, so callers never learn which part was wrong.
func VerifyPassword(plaintext, digest string) error {
	if bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) != nil {
		return domain.ErrInvalidCredentials
	}
	return nil
}
