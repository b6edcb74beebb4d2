package ports

// PasswordHasher performs one-way password hashing and verification.
type PasswordHasher interface {
	// Hash returns a salted one-way hash of the plaintext. Two calls with
	// the same plaintext produce different outputs.
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches the stored hash. A mismatch
	// is (false, nil); a failure of the primitive itself (e.g. a malformed
	// stored hash) is (false, err) wrapping domain.ErrCrypto.
	Verify(plaintext, hashed string) (bool, error)
}
