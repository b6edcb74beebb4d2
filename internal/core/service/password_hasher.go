package service

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/sellerhub/sellerhub-api/internal/core/domain"
)

// bcryptCost is the fixed work factor for password hashing.
const bcryptCost = 10

// BcryptHasher hashes and verifies passwords with bcrypt. The salt is random
// per call, so hashing the same password twice yields different values.
type BcryptHasher struct{}

func NewBcryptHasher() BcryptHasher {
	return BcryptHasher{}
}

func (BcryptHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrCrypto, err)
	}
	return string(hash), nil
}

// Verify returns (false, nil) on a plain mismatch. A failure of bcrypt
// itself (typically a malformed stored hash) wraps domain.ErrCrypto so the
// caller treats it as "cannot authenticate", not "invalid password".
func (BcryptHasher) Verify(plaintext, hashed string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", domain.ErrCrypto, err)
	}
}
