package domain

import (
	"errors"
	"fmt"
	"time"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

var (
	// ErrUserNotFound is returned by repositories when no user matches.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// that login responses never reveal whether an email is registered.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidToken covers malformed, tampered, and expired tokens alike.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrCrypto marks a failure of the hashing primitive itself, as opposed
	// to a credential mismatch.
	ErrCrypto = errors.New("crypto failure")
	// ErrTooManyLoginAttempts is returned when the login limiter trips.
	ErrTooManyLoginAttempts = errors.New("too many login attempts")
)

// DuplicateEmailError is returned when registering an email already on file.
// The email is part of the client-visible message.
type DuplicateEmailError struct {
	Email string
}

func (e *DuplicateEmailError) Error() string {
	return fmt.Sprintf("Email %s already exists", e.Email)
}

// User models a seller account.
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Email        string    `json:"email" bson:"email"`
	Name         string    `json:"name" bson:"name"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Role         string    `json:"role" bson:"role"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// Principal is the verified identity attached to a single request after the
// auth middleware accepts its bearer token. It is rebuilt from token claims
// on every request and never persisted.
type Principal struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
}
