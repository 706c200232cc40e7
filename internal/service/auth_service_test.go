package service

import (
	"context"
	"errors"
	"testing"

	"blogserver/internal/models"
)

// mockUserRepo is a lightweight in-test mock for repository.Users.
type mockUserRepo struct {
	CreateFn        func(u models.User) (string, error)
	GetByIDFn       func(id string) (*models.User, error)
	GetByUsernameFn func(username string) (*models.User, error)
	ExistsFn        func(username, email string) (bool, error)
	UpdateFn        func(id, username, email string) (bool, error)
	UsernamesFn     func(ids []string) (map[string]string, error)

	createCalls []models.User
	updateCalls []string
}

func (m *mockUserRepo) Create(_ context.Context, u models.User) (string, error) {
	m.createCalls = append(m.createCalls, u)
	return m.CreateFn(u)
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	return m.GetByIDFn(id)
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	return m.GetByUsernameFn(username)
}

func (m *mockUserRepo) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	return m.ExistsFn(username, email)
}

func (m *mockUserRepo) Update(_ context.Context, id, username, email string) (bool, error) {
	m.updateCalls = append(m.updateCalls, id)
	return m.UpdateFn(id, username, email)
}

func (m *mockUserRepo) UsernamesByIDs(_ context.Context, ids []string) (map[string]string, error) {
	return m.UsernamesFn(ids)
}

// --- Register tests ---

func TestAuthService_Register_StoresPasswordAsProvided(t *testing.T) {
	mock := &mockUserRepo{
		ExistsFn: func(username, email string) (bool, error) { return false, nil },
		CreateFn: func(u models.User) (string, error) { return "u-42", nil },
	}
	svc := NewAuthService(mock, "test-key")

	id, err := svc.Register(context.Background(), "alice", "pw1", "a@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "u-42" {
		t.Fatalf("id: got %q, want u-42", id)
	}
	if len(mock.createCalls) != 1 {
		t.Fatalf("expected one Create call, got %d", len(mock.createCalls))
	}
	// no hashing in this system
	if mock.createCalls[0].Password != "pw1" {
		t.Fatalf("password must be stored as provided, got %q", mock.createCalls[0].Password)
	}
}

func TestAuthService_Register_DuplicateUsernameOrEmail(t *testing.T) {
	mock := &mockUserRepo{
		ExistsFn: func(username, email string) (bool, error) { return true, nil },
		CreateFn: func(u models.User) (string, error) { return "", errors.New("must not be called") },
	}
	svc := NewAuthService(mock, "test-key")

	_, err := svc.Register(context.Background(), "alice", "pw1", "a@x.com")
	if !errors.Is(err, ErrDuplicateUser) {
		t.Fatalf("expected ErrDuplicateUser, got %v", err)
	}
	if len(mock.createCalls) != 0 {
		t.Fatalf("Create must not be called for a duplicate")
	}
}

// --- GenerateToken tests ---

func TestAuthService_GenerateToken_RoundTrip(t *testing.T) {
	mock := &mockUserRepo{
		GetByUsernameFn: func(username string) (*models.User, error) {
			return &models.User{ID: "u-7", Username: "alice", Password: "pw1"}, nil
		},
	}
	svc := NewAuthService(mock, "test-key")

	token, err := svc.GenerateToken(context.Background(), "alice", "pw1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}

	uid, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if uid != "u-7" {
		t.Fatalf("uid: got %q, want u-7", uid)
	}
}

func TestAuthService_GenerateToken_BadCredentialsIndistinguishable(t *testing.T) {
	// unknown user
	mock := &mockUserRepo{
		GetByUsernameFn: func(username string) (*models.User, error) { return nil, nil },
	}
	svc := NewAuthService(mock, "test-key")
	_, errUnknown := svc.GenerateToken(context.Background(), "ghost", "pw1")

	// wrong password
	mock.GetByUsernameFn = func(username string) (*models.User, error) {
		return &models.User{ID: "u-7", Username: "alice", Password: "pw1"}, nil
	}
	_, errWrong := svc.GenerateToken(context.Background(), "alice", "nope")

	if !errors.Is(errUnknown, ErrInvalidCredentials) || !errors.Is(errWrong, ErrInvalidCredentials) {
		t.Fatalf("both failures must map to ErrInvalidCredentials: %v / %v", errUnknown, errWrong)
	}
}

// --- ParseToken tests ---

func TestAuthService_ParseToken_RejectsTampering(t *testing.T) {
	mock := &mockUserRepo{
		GetByUsernameFn: func(username string) (*models.User, error) {
			return &models.User{ID: "u-7", Username: "alice", Password: "pw1"}, nil
		},
	}
	svc := NewAuthService(mock, "test-key")

	token, err := svc.GenerateToken(context.Background(), "alice", "pw1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// flip one byte anywhere in the token
	for i := 0; i < len(token); i++ {
		altered := []byte(token)
		altered[i] ^= 0x01
		if _, err := svc.ParseToken(string(altered)); err == nil {
			t.Fatalf("altered token at byte %d must not verify", i)
		}
	}

	// wrong key must also fail
	other := NewAuthService(mock, "different-key")
	if _, err := other.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken under wrong key, got %v", err)
	}
}

func TestAuthService_ParseToken_Malformed(t *testing.T) {
	svc := NewAuthService(&mockUserRepo{}, "test-key")
	for _, tok := range []string{"", "garbage", "a.b", "a.b.c"} {
		if _, err := svc.ParseToken(tok); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("token %q: expected ErrInvalidToken, got %v", tok, err)
		}
	}
}
