package handlers

import (
	"context"
	"net/http"

	"serverless_blog/internal/models"
	"serverless_blog/internal/service"
	"serverless_blog/internal/validation"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpToken string
	signUpErr   error
	signInToken string
	signInErr   error
	parseID     string
	parseErr    error

	signUpCalls    int
	lastSignUp     validation.SignupInput
	lastSignIn     validation.SigninInput
	lastParseToken string
}

func (m *mockAuth) SignUp(_ context.Context, in validation.SignupInput) (string, error) {
	m.signUpCalls++
	m.lastSignUp = in
	return m.signUpToken, m.signUpErr
}

func (m *mockAuth) SignIn(_ context.Context, in validation.SigninInput) (string, error) {
	m.lastSignIn = in
	return m.signInToken, m.signInErr
}

func (m *mockAuth) ParseToken(token string) (string, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockPosts struct {
	createID  string
	createErr error
	editErr   error
	post      *models.Post
	getErr    error
	list      []models.Post
	listErr   error
	// listFn, when set, replaces list/listErr; the ws stream calls it from the handler goroutine.
	listFn func() ([]models.Post, error)

	createCalls    int
	lastAuthorID   string
	lastCreate     validation.CreatePostInput
	lastEditUserID string
	lastEdit       validation.EditPostInput
	lastGetID      string
}

func (m *mockPosts) Create(_ context.Context, authorID string, in validation.CreatePostInput) (string, error) {
	m.createCalls++
	m.lastAuthorID = authorID
	m.lastCreate = in
	return m.createID, m.createErr
}

func (m *mockPosts) Edit(_ context.Context, userID string, in validation.EditPostInput) (string, error) {
	m.lastEditUserID = userID
	m.lastEdit = in
	if m.editErr != nil {
		return "", m.editErr
	}
	return in.ID, nil
}

func (m *mockPosts) Get(_ context.Context, id string) (*models.Post, error) {
	m.lastGetID = id
	return m.post, m.getErr
}

func (m *mockPosts) List(_ context.Context) ([]models.Post, error) {
	if m.listFn != nil {
		return m.listFn()
	}
	return m.list, m.listErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil, Options{})
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
