package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sellerhub/sellerhub-api/internal/core/domain"
	"github.com/sellerhub/sellerhub-api/internal/core/ports"
)

// JWTTokenService issues and verifies HS256-signed bearer tokens against a
// single process-wide secret. Tokens are stateless: no revocation list, no
// refresh mechanism. A token stays valid for its whole declared lifetime.
type JWTTokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTTokenService(secret string, ttl time.Duration) *JWTTokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTTokenService{secret: []byte(secret), ttl: ttl}
}

type tokenClaims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Issue produces a compact signed token carrying userId, role, iat and exp.
func (s *JWTTokenService) Issue(payload ports.TokenPayload) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		UserID: payload.UserID,
		Role:   payload.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify validates signature and expiry. Malformed structure, signature
// mismatch, and expiry all collapse into domain.ErrInvalidToken so callers
// cannot tell why verification failed.
func (s *JWTTokenService) Verify(token string) (ports.TokenPayload, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return ports.TokenPayload{}, domain.ErrInvalidToken
	}

	return ports.TokenPayload{UserID: claims.UserID, Role: claims.Role}, nil
}
