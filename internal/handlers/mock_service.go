package handlers

import (
	"context"
	"net/http"

	"blogserver/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerID  string
	registerErr error
	tokenValue  string
	tokenErr    error
	parseID     string
	parseErr    error

	lastRegisterUsername string
	lastRegisterPassword string
	lastRegisterEmail    string
	lastTokenUsername    string
	lastTokenPassword    string
	lastParseToken       string
}

func (m *mockAuth) Register(ctx context.Context, username, password, email string) (string, error) {
	m.lastRegisterUsername = username
	m.lastRegisterPassword = password
	m.lastRegisterEmail = email
	return m.registerID, m.registerErr
}
func (m *mockAuth) GenerateToken(ctx context.Context, username, password string) (string, error) {
	m.lastTokenUsername = username
	m.lastTokenPassword = password
	return m.tokenValue, m.tokenErr
}
func (m *mockAuth) ParseToken(token string) (string, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockUsers struct {
	updateErr error

	lastCallerID string
	lastTargetID string
	lastUsername string
	lastEmail    string
	updateCalls  int
}

func (m *mockUsers) Update(ctx context.Context, callerID, targetID, username, email string) error {
	m.updateCalls++
	m.lastCallerID = callerID
	m.lastTargetID = targetID
	m.lastUsername = username
	m.lastEmail = email
	return m.updateErr
}

type mockBlog struct {
	createID   string
	createErr  error
	listResp   []service.PostView
	listErr    error
	getResp    *service.PostView
	getErr     error
	updateErr  error
	deleteErr  error
	commentErr error

	lastAuthorID string
	lastCallerID string
	lastPostID   string
	lastTitle    string
	lastContent  string
	lastComment  string
	createCalls  int
	updateCalls  int
	deleteCalls  int
	commentCalls int
}

func (m *mockBlog) Create(ctx context.Context, authorID, title, content string) (string, error) {
	m.createCalls++
	m.lastAuthorID = authorID
	m.lastTitle = title
	m.lastContent = content
	return m.createID, m.createErr
}
func (m *mockBlog) List(ctx context.Context) ([]service.PostView, error) {
	return m.listResp, m.listErr
}
func (m *mockBlog) GetByID(ctx context.Context, id string) (*service.PostView, error) {
	m.lastPostID = id
	return m.getResp, m.getErr
}
func (m *mockBlog) Update(ctx context.Context, callerID, id, title, content string) error {
	m.updateCalls++
	m.lastCallerID = callerID
	m.lastPostID = id
	m.lastTitle = title
	m.lastContent = content
	return m.updateErr
}
func (m *mockBlog) Delete(ctx context.Context, callerID, id string) error {
	m.deleteCalls++
	m.lastCallerID = callerID
	m.lastPostID = id
	return m.deleteErr
}
func (m *mockBlog) AddComment(ctx context.Context, callerID, postID, text string) error {
	m.commentCalls++
	m.lastCallerID = callerID
	m.lastPostID = postID
	m.lastComment = text
	return m.commentErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
