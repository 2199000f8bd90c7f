package service

import (
	"context"
	"time"

	"serverless_blog/internal/models"
	"serverless_blog/internal/repository"
	"serverless_blog/internal/validation"
)

// Authorization covers account creation, credential checks and bearer token parsing.
type Authorization interface {
	SignUp(ctx context.Context, in validation.SignupInput) (string, error)
	SignIn(ctx context.Context, in validation.SigninInput) (string, error)
	ParseToken(accessToken string) (string, error)
}

// Posts exposes create/edit/read operations on blog posts.
type Posts interface {
	Create(ctx context.Context, authorID string, in validation.CreatePostInput) (string, error)
	Edit(ctx context.Context, userID string, in validation.EditPostInput) (string, error)
	Get(ctx context.Context, id string) (*models.Post, error)
	List(ctx context.Context) ([]models.Post, error)
}

// Options carries the settings the services need from configuration.
type Options struct {
	Secret   string
	TokenTTL time.Duration // zero issues non-expiring tokens
	// EnforcePostOwnership restricts edits to the post's author.
	EnforcePostOwnership bool
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Posts
}

// NewService wires the services over repos with settings from opts.
func NewService(repos *repository.Repository, opts Options) *Service {
	tokens := NewTokenService(opts.Secret, opts.TokenTTL)
	return &Service{
		Authorization: NewUserService(repos.Users, NewBcryptHasher(), tokens),
		Posts:         NewPostService(repos.Posts, repos.Users, opts.EnforcePostOwnership),
	}
}
