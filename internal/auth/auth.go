package auth

import (
	"context"
	"errors"
	"time"

	"github.com/hmondejar/notekit/internal/user"
)

var (
	ErrUserExists         = errors.New("auth: user already exists")
	ErrUserNotVerified    = errors.New("auth: email not verified")
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	ErrInvalidToken       = errors.New("auth: invalid token")
	ErrInvalidResetToken  = errors.New("auth: invalid or expired reset token")
	ErrEmailDelivery      = errors.New("auth: email could not be sent")
)

// AuthService is the workflow surface the HTTP handlers depend on.
type AuthService interface {
	Register(ctx context.Context, params RegisterParams) (token string, err error)
	Login(ctx context.Context, params LoginParams) (token string, err error)
	CurrentUser(ctx context.Context, userID string) (*user.User, error)
	UpdateEmail(ctx context.Context, userID, email string) (*user.User, error)
	UpdatePassword(ctx context.Context, userID string, params UpdatePasswordParams) (token string, err error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, plainToken, newPassword string) (token string, err error)
	VerifyEmail(ctx context.Context, token string) error
}

// AuthRepository is the storage contract for auth-owned user mutations.
type AuthRepository interface {
	VerifyUser(ctx context.Context, userID string) error
	ChangeUserPassword(ctx context.Context, userID, passwordHash string) error
	SetResetToken(ctx context.Context, userID, tokenHash string, expire time.Time) error
	ClearResetToken(ctx context.Context, userID string) error
	FindUserByResetToken(ctx context.Context, tokenHash string) (*user.User, error)
}
