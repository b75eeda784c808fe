package auth

import (
	"context"
	"errors"
	"time"

	"github.com/hmondejar/notekit/internal/user"
)

// StubService is a test double for AuthService with per-method overrides.
type StubService struct {
	RegisterFunc       func(ctx context.Context, params RegisterParams) (string, error)
	LoginFunc          func(ctx context.Context, params LoginParams) (string, error)
	CurrentUserFunc    func(ctx context.Context, userID string) (*user.User, error)
	UpdateEmailFunc    func(ctx context.Context, userID, email string) (*user.User, error)
	UpdatePasswordFunc func(ctx context.Context, userID string, params UpdatePasswordParams) (string, error)
	ForgotPasswordFunc func(ctx context.Context, email string) error
	ResetPasswordFunc  func(ctx context.Context, plainToken, newPassword string) (string, error)
	VerifyEmailFunc    func(ctx context.Context, token string) error
}

var _ AuthService = (*StubService)(nil)

func (s *StubService) Register(ctx context.Context, params RegisterParams) (string, error) {
	if s.RegisterFunc == nil {
		return "", errors.New("Register not implemented by stub")
	}
	return s.RegisterFunc(ctx, params)
}

func (s *StubService) Login(ctx context.Context, params LoginParams) (string, error) {
	if s.LoginFunc == nil {
		return "", errors.New("Login not implemented by stub")
	}
	return s.LoginFunc(ctx, params)
}

func (s *StubService) CurrentUser(ctx context.Context, userID string) (*user.User, error) {
	if s.CurrentUserFunc == nil {
		return nil, errors.New("CurrentUser not implemented by stub")
	}
	return s.CurrentUserFunc(ctx, userID)
}

func (s *StubService) UpdateEmail(ctx context.Context, userID, email string) (*user.User, error) {
	if s.UpdateEmailFunc == nil {
		return nil, errors.New("UpdateEmail not implemented by stub")
	}
	return s.UpdateEmailFunc(ctx, userID, email)
}

func (s *StubService) UpdatePassword(ctx context.Context, userID string, params UpdatePasswordParams) (string, error) {
	if s.UpdatePasswordFunc == nil {
		return "", errors.New("UpdatePassword not implemented by stub")
	}
	return s.UpdatePasswordFunc(ctx, userID, params)
}

func (s *StubService) ForgotPassword(ctx context.Context, email string) error {
	if s.ForgotPasswordFunc == nil {
		return errors.New("ForgotPassword not implemented by stub")
	}
	return s.ForgotPasswordFunc(ctx, email)
}

func (s *StubService) ResetPassword(ctx context.Context, plainToken, newPassword string) (string, error) {
	if s.ResetPasswordFunc == nil {
		return "", errors.New("ResetPassword not implemented by stub")
	}
	return s.ResetPasswordFunc(ctx, plainToken, newPassword)
}

func (s *StubService) VerifyEmail(ctx context.Context, token string) error {
	if s.VerifyEmailFunc == nil {
		return errors.New("VerifyEmail not implemented by stub")
	}
	return s.VerifyEmailFunc(ctx, token)
}

// StubRepo is a test double for AuthRepository with per-method overrides.
type StubRepo struct {
	VerifyUserFunc           func(ctx context.Context, userID string) error
	ChangeUserPasswordFunc   func(ctx context.Context, userID, passwordHash string) error
	SetResetTokenFunc        func(ctx context.Context, userID, tokenHash string, expire time.Time) error
	ClearResetTokenFunc      func(ctx context.Context, userID string) error
	FindUserByResetTokenFunc func(ctx context.Context, tokenHash string) (*user.User, error)
}

var _ AuthRepository = (*StubRepo)(nil)

func (r *StubRepo) VerifyUser(ctx context.Context, userID string) error {
	if r.VerifyUserFunc == nil {
		return errors.New("VerifyUser not implemented by stub")
	}
	return r.VerifyUserFunc(ctx, userID)
}

func (r *StubRepo) ChangeUserPassword(ctx context.Context, userID, passwordHash string) error {
	if r.ChangeUserPasswordFunc == nil {
		return errors.New("ChangeUserPassword not implemented by stub")
	}
	return r.ChangeUserPasswordFunc(ctx, userID, passwordHash)
}

func (r *StubRepo) SetResetToken(ctx context.Context, userID, tokenHash string, expire time.Time) error {
	if r.SetResetTokenFunc == nil {
		return errors.New("SetResetToken not implemented by stub")
	}
	return r.SetResetTokenFunc(ctx, userID, tokenHash, expire)
}

func (r *StubRepo) ClearResetToken(ctx context.Context, userID string) error {
	if r.ClearResetTokenFunc == nil {
		return errors.New("ClearResetToken not implemented by stub")
	}
	return r.ClearResetTokenFunc(ctx, userID)
}

func (r *StubRepo) FindUserByResetToken(ctx context.Context, tokenHash string) (*user.User, error) {
	if r.FindUserByResetTokenFunc == nil {
		return nil, errors.New("FindUserByResetToken not implemented by stub")
	}
	return r.FindUserByResetTokenFunc(ctx, tokenHash)
}

// StubTxManager runs the function directly without a database transaction.
type StubTxManager struct{}

func (StubTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
