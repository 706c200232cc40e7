package service

import (
	"context"
	"errors"
	"testing"

	"blogserver/internal/models"
)

func TestUserService_Update(t *testing.T) {
	existing := &models.User{ID: "u-1", Username: "alice", Email: "a@x.com", Password: "pw1"}

	tests := []struct {
		name     string
		callerID string
		targetID string
		getUser  *models.User
		wantErr  error
	}{
		{
			name:     "owner updates own account",
			callerID: "u-1",
			targetID: "u-1",
			getUser:  existing,
			wantErr:  nil,
		},
		{
			name:     "target missing",
			callerID: "u-1",
			targetID: "ghost",
			getUser:  nil,
			wantErr:  ErrUserNotFound,
		},
		{
			name:     "caller is not the target",
			callerID: "u-2",
			targetID: "u-1",
			getUser:  existing,
			wantErr:  ErrNotOwner,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockUserRepo{
				GetByIDFn: func(id string) (*models.User, error) { return tt.getUser, nil },
				UpdateFn:  func(id, username, email string) (bool, error) { return true, nil },
			}
			svc := NewUserService(mock)

			err := svc.Update(context.Background(), tt.callerID, tt.targetID, "new", "n@x.com")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err: got %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil && len(mock.updateCalls) != 0 {
				t.Fatalf("Update must not run when the check fails")
			}
			if tt.wantErr == nil && len(mock.updateCalls) != 1 {
				t.Fatalf("expected one Update call, got %d", len(mock.updateCalls))
			}
		})
	}
}

func TestUserService_Update_RepoError(t *testing.T) {
	dbErr := errors.New("db down")
	mock := &mockUserRepo{
		GetByIDFn: func(id string) (*models.User, error) { return nil, dbErr },
	}
	svc := NewUserService(mock)

	if err := svc.Update(context.Background(), "u-1", "u-1", "new", "n@x.com"); !errors.Is(err, dbErr) {
		t.Fatalf("expected repo error to propagate, got %v", err)
	}
}
