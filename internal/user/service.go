package user

import (
	"context"
	"fmt"
)

// Service is the implementation of the UserService interface.
type Service struct {
	repo UserRepository
}

var _ UserService = (*Service)(nil)

func NewService(repo UserRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateUser(ctx context.Context, params CreateUserParams) (User, error) {
	u, err := s.repo.CreateUser(ctx, params)
	if err != nil {
		return u, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (s *Service) FindUser(ctx context.Context, userID string) (*User, error) {
	u, err := s.repo.FindUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return u, nil
}

func (s *Service) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	u, err := s.repo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return u, nil
}

func (s *Service) UpdateUserEmail(ctx context.Context, userID, email string) (*User, error) {
	u, err := s.repo.UpdateUserEmail(ctx, userID, email)
	if err != nil {
		return nil, fmt.Errorf("update user email: %w", err)
	}
	return u, nil
}
