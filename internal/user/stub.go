package user

import (
	"context"
	"errors"
)

// StubService is a test double for UserService with per-method overrides.
type StubService struct {
	CreateUserFunc      func(ctx context.Context, params CreateUserParams) (User, error)
	FindUserFunc        func(ctx context.Context, userID string) (*User, error)
	FindUserByEmailFunc func(ctx context.Context, email string) (*User, error)
	UpdateUserEmailFunc func(ctx context.Context, userID, email string) (*User, error)
}

var _ UserService = (*StubService)(nil)

func (s *StubService) CreateUser(ctx context.Context, params CreateUserParams) (User, error) {
	if s.CreateUserFunc == nil {
		return User{}, errors.New("CreateUser not implemented by stub")
	}
	return s.CreateUserFunc(ctx, params)
}

func (s *StubService) FindUser(ctx context.Context, userID string) (*User, error) {
	if s.FindUserFunc == nil {
		return nil, errors.New("FindUser not implemented by stub")
	}
	return s.FindUserFunc(ctx, userID)
}

func (s *StubService) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	if s.FindUserByEmailFunc == nil {
		return nil, errors.New("FindUserByEmail not implemented by stub")
	}
	return s.FindUserByEmailFunc(ctx, email)
}

func (s *StubService) UpdateUserEmail(ctx context.Context, userID, email string) (*User, error) {
	if s.UpdateUserEmailFunc == nil {
		return nil, errors.New("UpdateUserEmail not implemented by stub")
	}
	return s.UpdateUserEmailFunc(ctx, userID, email)
}
