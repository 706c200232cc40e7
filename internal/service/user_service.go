package service

import (
	"context"
	"errors"

	"blogserver/internal/repository"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrNotOwner     = errors.New("caller does not own this resource")
)

type UserService struct {
	users repository.Users
}

func NewUserService(users repository.Users) *UserService {
	return &UserService{users: users}
}

// Update overwrites the target user's username and email. Existence is
// checked before ownership, so a missing user is reported as not found even
// to a caller who would not own it.
func (s *UserService) Update(ctx context.Context, callerID, targetID, username, email string) error {
	u, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrUserNotFound
	}
	if u.ID != callerID {
		return ErrNotOwner
	}

	ok, err := s.users.Update(ctx, targetID, username, email)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUserNotFound
	}
	return nil
}
