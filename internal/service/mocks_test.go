package service

import (
	"context"

	"serverless_blog/internal/models"
)

// mockUserRepo is a lightweight in-test mock for repository.UserRepo.
type mockUserRepo struct {
	CreateFn     func(u *models.User) error
	GetByEmailFn func(email string) (*models.User, error)
	GetByIDFn    func(id string) (*models.User, error)

	created  []models.User
	getCalls []string
}

func (m *mockUserRepo) Create(_ context.Context, u *models.User) error {
	m.created = append(m.created, *u)
	return m.CreateFn(u)
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	m.getCalls = append(m.getCalls, email)
	return m.GetByEmailFn(email)
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	return m.GetByIDFn(id)
}

// mockPostRepo is a lightweight in-test mock for repository.PostRepo.
type mockPostRepo struct {
	CreateFn  func(p *models.Post) error
	UpdateFn  func(id, title, content string) error
	GetByIDFn func(id string) (*models.Post, error)
	ListFn    func() ([]models.Post, error)

	updateCalls int
}

func (m *mockPostRepo) Create(_ context.Context, p *models.Post) error { return m.CreateFn(p) }

func (m *mockPostRepo) Update(_ context.Context, id, title, content string) error {
	m.updateCalls++
	return m.UpdateFn(id, title, content)
}

func (m *mockPostRepo) GetByID(_ context.Context, id string) (*models.Post, error) {
	return m.GetByIDFn(id)
}

func (m *mockPostRepo) List(_ context.Context) ([]models.Post, error) { return m.ListFn() }

// fastHasher skips bcrypt work in tests that only care about flow.
type fastHasher struct{}

func (fastHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (fastHasher) Verify(password, hash string) bool   { return hash == "hashed:"+password }
