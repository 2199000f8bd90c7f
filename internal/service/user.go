package service

import (
	"context"
	"errors"
	"fmt"

	"serverless_blog/internal/metrics"
	"serverless_blog/internal/models"
	"serverless_blog/internal/repository"
	"serverless_blog/internal/validation"
)

// UserService handles signup and signin.
type UserService struct {
	users  repository.UserRepo
	hasher PasswordHasher
	tokens *TokenService
}

func NewUserService(repo repository.UserRepo, hasher PasswordHasher, tokens *TokenService) *UserService {
	return &UserService{users: repo, hasher: hasher, tokens: tokens}
}

// SignUp creates the account and returns a token for it.
// An email that is already registered yields ErrUserExists.
func (s *UserService) SignUp(ctx context.Context, in validation.SignupInput) (string, error) {
	existing, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		metrics.SignupsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return "", fmt.Errorf("lookup user: %w", err)
	}
	if existing != nil {
		metrics.SignupsTotal.WithLabelValues(metrics.OutcomeConflict).Inc()
		return "", ErrUserExists
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		metrics.SignupsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return "", err
	}

	u := &models.User{
		Email:        in.Email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, u); err != nil {
		// Lost a race with a concurrent signup for the same email.
		if errors.Is(err, repository.ErrDuplicate) {
			metrics.SignupsTotal.WithLabelValues(metrics.OutcomeConflict).Inc()
			return "", ErrUserExists
		}
		metrics.SignupsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return "", err
	}

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		metrics.SignupsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return "", err
	}
	metrics.SignupsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	return token, nil
}

// SignIn validates credentials and returns a token.
func (s *UserService) SignIn(ctx context.Context, in validation.SigninInput) (string, error) {
	u, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		metrics.SigninsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return "", fmt.Errorf("lookup user: %w", err)
	}
	if u == nil {
		metrics.SigninsTotal.WithLabelValues(metrics.OutcomeNotFound).Inc()
		return "", ErrUserNotFound
	}

	if !s.hasher.Verify(in.Password, u.PasswordHash) {
		metrics.SigninsTotal.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		metrics.SigninsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return "", err
	}
	metrics.SigninsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	return token, nil
}

// ParseToken verifies the bearer token and returns the user id it carries.
func (s *UserService) ParseToken(accessToken string) (string, error) {
	claims, err := s.tokens.Verify(accessToken)
	if err != nil {
		return "", err
	}
	return claims.UserID, nil
}
