package users

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrUnauthorized is returned for an unknown user or a wrong password. The
// two cases are deliberately indistinguishable to the caller.
var ErrUnauthorized = errors.New("invalid credentials")

// ErrInvalidRole is returned when creating a user with an unknown role.
var ErrInvalidRole = errors.New("invalid role")

// Service authenticates users and issues session tokens.
type Service struct {
	repo   *Repository
	hasher *PasswordHasher
	tokens *TokenManager
	logger *zap.Logger
}

// NewService creates a new user Service.
func NewService(repo *Repository, hasher *PasswordHasher, tokens *TokenManager, logger *zap.Logger) *Service {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	return &Service{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
	}
}

// Authenticate verifies the credentials and returns the user together with a
// signed session token. Returns ErrUnauthorized on any credential mismatch.
func (s *Service) Authenticate(name, password string) (*User, string, error) {
	user, err := s.repo.FindByName(name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.logger.Warn("login attempt for unknown user", zap.String("name", name))
			return nil, "", ErrUnauthorized
		}
		return nil, "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.logger.Warn("login attempt with wrong password", zap.String("name", name))
		return nil, "", ErrUnauthorized
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		s.logger.Error("failed to issue token", zap.Uint("user_id", user.ID), zap.Error(err))
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info("user authenticated", zap.Uint("user_id", user.ID), zap.String("role", string(user.Role)))
	return user, token, nil
}

// Create registers a new account with a hashed password. Used by seeding.
func (s *Service) Create(name, password string, role Role) (*User, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &User{
		Name:         name,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}

	s.logger.Info("user created", zap.Uint("user_id", user.ID), zap.String("role", string(role)))
	return user, nil
}

// ValidateToken checks a bearer token and returns its claims.
func (s *Service) ValidateToken(token string) (*Claims, error) {
	return s.tokens.Validate(token)
}
