package service

import (
	"errors"
	"testing"

	"github.com/sellerhub/sellerhub-api/internal/core/domain"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("Secret1!")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "Secret1!" {
		t.Fatalf("hash equals plaintext")
	}

	ok, err := hasher.Verify("Secret1!", hash)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if !ok {
		t.Fatalf("expected match")
	}
}

func TestBcryptHasher_SaltRandomness(t *testing.T) {
	hasher := NewBcryptHasher()

	first, err := hasher.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	second, err := hasher.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if first == second {
		t.Fatalf("two hashes of the same password must differ")
	}
}

func TestBcryptHasher_Mismatch(t *testing.T) {
	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("correct")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}

	ok, err := hasher.Verify("wrong", hash)
	if err != nil {
		t.Fatalf("mismatch must not be an error, got %v", err)
	}
	if ok {
		t.Fatalf("expected mismatch")
	}
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	hasher := NewBcryptHasher()

	ok, err := hasher.Verify("anything", "not-a-bcrypt-hash")
	if ok {
		t.Fatalf("expected no match for malformed hash")
	}
	if !errors.Is(err, domain.ErrCrypto) {
		t.Fatalf("expected ErrCrypto for malformed stored hash, got %v", err)
	}
}
