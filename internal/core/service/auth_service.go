package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/sellerhub/sellerhub-api/internal/core/domain"
	"github.com/sellerhub/sellerhub-api/internal/core/ports"
)

// LoginGuard abstracts the Redis-backed login attempt limiter. Guard errors
// never block authentication: the limiter fails open.
type LoginGuard interface {
	TooManyAttempts(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// AuthService implements registration and login on top of the user
// repository, the password hasher, and the token service.
type AuthService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenService
	guard  LoginGuard
	log    zerolog.Logger
}

// NewAuthService wires an AuthService. guard may be nil when no login
// throttling is configured.
func NewAuthService(repo ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenService, guard LoginGuard, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, guard: guard, log: log}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	_, err := s.repo.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, &domain.DuplicateEmailError{Email: input.Email}
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Msg("user registered")
	return created, nil
}

// Login authenticates a seller and issues a bearer token. Unknown email and
// wrong password both surface as domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if throttled := s.throttled(ctx, email); throttled {
		return "", nil, domain.ErrTooManyLoginAttempts
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, email)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		// Hashing primitive failed: infrastructure problem, not a bad password.
		s.log.Error().Err(err).Str("user_id", user.ID).Msg("password verification failed")
		return "", nil, err
	}
	if !ok {
		s.recordFailure(ctx, email)
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(ports.TokenPayload{UserID: user.ID, Role: user.Role})
	if err != nil {
		return "", nil, err
	}

	s.reset(ctx, email)
	return token, user, nil
}

func (s *AuthService) throttled(ctx context.Context, email string) bool {
	if s.guard == nil {
		return false
	}
	tripped, err := s.guard.TooManyAttempts(ctx, email)
	if err != nil {
		s.log.Warn().Err(err).Msg("login guard check failed, allowing attempt")
		return false
	}
	return tripped
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if s.guard == nil {
		return
	}
	if err := s.guard.RecordFailure(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("failed to record login failure")
	}
}

func (s *AuthService) reset(ctx context.Context, email string) {
	if s.guard == nil {
		return
	}
	if err := s.guard.Reset(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("failed to reset login guard")
	}
}
