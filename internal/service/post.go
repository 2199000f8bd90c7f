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

// PostService implements Posts over the post and user repositories.
type PostService struct {
	posts            repository.PostRepo
	users            repository.UserRepo
	enforceOwnership bool
}

// NewPostService builds a PostService; enforceOwnership limits edits to the author.
func NewPostService(posts repository.PostRepo, users repository.UserRepo, enforceOwnership bool) *PostService {
	return &PostService{posts: posts, users: users, enforceOwnership: enforceOwnership}
}

// Create stores a post authored by authorID and returns its id.
// The author must exist; otherwise ErrUserNotFound.
func (s *PostService) Create(ctx context.Context, authorID string, in validation.CreatePostInput) (string, error) {
	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		return "", fmt.Errorf("lookup author: %w", err)
	}
	if author == nil {
		return "", ErrUserNotFound
	}

	p := &models.Post{Title: in.Title, Content: in.Content, AuthorID: author.ID}
	if err := s.posts.Create(ctx, p); err != nil {
		return "", err
	}
	metrics.PostsCreatedTotal.Inc()
	return p.ID, nil
}

// Edit replaces title and content of post in.ID. Unless ownership is
// enforced, any authenticated user may edit any post.
func (s *PostService) Edit(ctx context.Context, userID string, in validation.EditPostInput) (string, error) {
	if s.enforceOwnership {
		p, err := s.posts.GetByID(ctx, in.ID)
		if err != nil {
			return "", err
		}
		if p == nil {
			return "", ErrPostNotFound
		}
		if p.AuthorID != userID {
			return "", ErrForbidden
		}
	}

	if err := s.posts.Update(ctx, in.ID, in.Title, in.Content); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrPostNotFound
		}
		return "", err
	}
	metrics.PostsEditedTotal.Inc()
	return in.ID, nil
}

// Get returns the post with id or ErrPostNotFound.
func (s *PostService) Get(ctx context.Context, id string) (*models.Post, error) {
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPostNotFound
	}
	return p, nil
}

// List returns every post, oldest first.
func (s *PostService) List(ctx context.Context) ([]models.Post, error) {
	return s.posts.List(ctx)
}
