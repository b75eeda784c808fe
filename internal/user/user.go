package user

import "context"

// UserRepository is the storage contract for user records.
type UserRepository interface {
	CreateUser(ctx context.Context, params CreateUserParams) (User, error)
	FindUser(ctx context.Context, userID string) (*User, error)
	FindUserByEmail(ctx context.Context, email string) (*User, error)
	UpdateUserEmail(ctx context.Context, userID, email string) (*User, error)
}

// UserService is the contract the auth workflow depends on.
type UserService interface {
	CreateUser(ctx context.Context, params CreateUserParams) (User, error)
	FindUser(ctx context.Context, userID string) (*User, error)
	FindUserByEmail(ctx context.Context, email string) (*User, error)
	UpdateUserEmail(ctx context.Context, userID, email string) (*User, error)
}
