package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"serverless_blog/internal/models"

	"github.com/google/uuid"
)

type PostRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) *PostRepository { return &PostRepository{db: db} }

var _ PostRepo = (*PostRepository)(nil)

const (
	insertPostSQL     = `INSERT INTO posts (id, title, content, author_id, created_at) VALUES ($1, $2, $3, $4, $5)`
	updatePostSQL     = `UPDATE posts SET title = $1, content = $2 WHERE id = $3`
	selectPostByIDSQL = `SELECT id, title, content, author_id, created_at FROM posts WHERE id = $1`
	selectPostsSQL    = `SELECT id, title, content, author_id, created_at FROM posts ORDER BY created_at, id`
)

// Create inserts a post, assigning its ID and CreatedAt.
func (r *PostRepository) Create(ctx context.Context, p *models.Post) error {
	id := uuid.NewString()
	createdAt := time.Now().UTC()

	if _, err := r.db.ExecContext(ctx, insertPostSQL, id, p.Title, p.Content, p.AuthorID, createdAt); err != nil {
		return fmt.Errorf("insert post for author %q: %w", p.AuthorID, err)
	}

	p.ID = id
	p.CreatedAt = createdAt
	return nil
}

// Update replaces title and content. Returns ErrNotFound if no post has id.
func (r *PostRepository) Update(ctx context.Context, id, title, content string) error {
	res, err := r.db.ExecContext(ctx, updatePostSQL, title, content, id)
	if err != nil {
		return fmt.Errorf("update post %q: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for post %q: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("update post %q: %w", id, ErrNotFound)
	}
	return nil
}

// GetByID fetches a post. Returns (nil, nil) if not found.
func (r *PostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	var p models.Post
	err := r.db.QueryRowContext(ctx, selectPostByIDSQL, id).
		Scan(&p.ID, &p.Title, &p.Content, &p.AuthorID, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select post %q: %w", id, err)
	}
	return &p, nil
}

// List returns every post ordered by creation time.
func (r *PostRepository) List(ctx context.Context) ([]models.Post, error) {
	rows, err := r.db.QueryContext(ctx, selectPostsSQL)
	if err != nil {
		return nil, fmt.Errorf("select posts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	posts := make([]models.Post, 0)
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.AuthorID, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}
	return posts, nil
}
