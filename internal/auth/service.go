package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hmondejar/notekit/internal/config"
	"github.com/hmondejar/notekit/internal/pkg/security"
	"github.com/hmondejar/notekit/internal/platform/db"
	"github.com/hmondejar/notekit/internal/platform/email"
	"github.com/hmondejar/notekit/internal/platform/hash"
	"github.com/hmondejar/notekit/internal/platform/jwt"
	"github.com/hmondejar/notekit/internal/user"
)

// Providers bundles the platform collaborators the auth service needs.
type Providers struct {
	Hasher hash.Hasher
	Signer jwt.Signer
	Mailer email.Mailer
	TxMgr  db.TxManager
}

type Service struct {
	repo    AuthRepository
	userSvc user.UserService
	hasher  hash.Hasher
	signer  jwt.Signer
	mailer  email.Mailer
	txMgr   db.TxManager
	cfg     *config.Config
}

var _ AuthService = (*Service)(nil)

func NewService(repo AuthRepository, userSvc user.UserService, providers *Providers, cfg *config.Config) *Service {
	return &Service{
		repo:    repo,
		userSvc: userSvc,
		hasher:  providers.Hasher,
		signer:  providers.Signer,
		mailer:  providers.Mailer,
		txMgr:   providers.TxMgr,
		cfg:     cfg,
	}
}

type RegisterParams struct {
	Email    string
	Password string
}

func (p *RegisterParams) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", "*"),
		slog.String("password", "*"),
	)
}

type LoginParams struct {
	Email    string
	Password string
}

func (p *LoginParams) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", "*"),
		slog.String("password", "*"),
	)
}

type UpdatePasswordParams struct {
	CurrentPassword string
	NewPassword     string
}

func (p *UpdatePasswordParams) LogValue() slog.Value {
	return slog.AnyValue(nil)
}

// Register persists a new unverified user, issues an identity token, and
// mails a verification link embedding that token. When the email cannot be
// sent the user record deliberately stays; the caller gets ErrEmailDelivery
// and no token, and has to complete verification later. There is no resend
// operation.
func (s *Service) Register(ctx context.Context, params RegisterParams) (string, error) {
	passwordHash, err := s.hasher.Hash(params.Password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	newUser, err := s.userSvc.CreateUser(ctx, user.CreateUserParams{
		Email:        params.Email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) {
			return "", ErrUserExists
		}
		return "", fmt.Errorf("create user: %w", err)
	}

	// The registration token does double duty: it is the caller's identity
	// token and the token embedded in the verification link, so it carries
	// the verification TTL instead of the session TTL.
	token, err := s.signer.Sign(newUser.ID, []string{s.cfg.JWT.Issuer}, s.cfg.Email.VerifyTTL.Duration)
	if err != nil {
		return "", fmt.Errorf("sign token for user %s: %w", newUser.ID, err)
	}

	link := fmt.Sprintf("%s/auth/verify/%s", s.cfg.Server.URL, token)
	body := fmt.Sprintf("Click <a href='%s'>here</a> to confirm your email and then login.", link)
	if err := s.mailer.SendHTML([]string{newUser.Email}, "Verify Account", body); err != nil {
		slog.Error("failed to send verification email", "reason", err)
		return "", ErrEmailDelivery
	}

	return token, nil
}

// Login authenticates a user. The verified check runs before the password
// check, so an unverified account answers "not verified" regardless of the
// password presented.
func (s *Service) Login(ctx context.Context, params LoginParams) (string, error) {
	u, err := s.userSvc.FindUserByEmail(ctx, params.Email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("find user by email: %w", err)
	}

	if !u.Verified {
		return "", ErrUserNotVerified
	}

	ok, err := s.hasher.Verify(params.Password, u.PasswordHash)
	if err != nil {
		return "", fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return "", ErrInvalidCredentials
	}

	return s.issueToken(u.ID)
}

func (s *Service) CurrentUser(ctx context.Context, userID string) (*user.User, error) {
	u, err := s.userSvc.FindUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user with id %s: %w", userID, err)
	}
	return u, nil
}

func (s *Service) UpdateEmail(ctx context.Context, userID, newEmail string) (*user.User, error) {
	u, err := s.userSvc.UpdateUserEmail(ctx, userID, newEmail)
	if err != nil {
		return nil, fmt.Errorf("update email for user %s: %w", userID, err)
	}
	return u, nil
}

func (s *Service) UpdatePassword(ctx context.Context, userID string, params UpdatePasswordParams) (string, error) {
	u, err := s.userSvc.FindUser(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("find user with id %s: %w", userID, err)
	}

	ok, err := s.hasher.Verify(params.CurrentPassword, u.PasswordHash)
	if err != nil {
		return "", fmt.Errorf("verify current password: %w", err)
	}
	if !ok {
		return "", ErrInvalidCredentials
	}

	newHash, err := s.hasher.Hash(params.NewPassword)
	if err != nil {
		return "", fmt.Errorf("hash new password: %w", err)
	}

	if err := s.repo.ChangeUserPassword(ctx, u.ID, newHash); err != nil {
		return "", fmt.Errorf("change password for user %s: %w", u.ID, err)
	}

	return s.issueToken(u.ID)
}

// ForgotPassword stores a hashed single-use reset token for the user and
// mails the plaintext. A failed send clears the stored token so no dead
// reset state is left behind.
func (s *Service) ForgotPassword(ctx context.Context, emailAddr string) error {
	u, err := s.userSvc.FindUserByEmail(ctx, emailAddr)
	if err != nil {
		return fmt.Errorf("find user by email: %w", err)
	}

	plain, tokenHash, err := security.NewResetToken()
	if err != nil {
		return fmt.Errorf("generate reset token: %w", err)
	}

	expire := time.Now().Add(s.cfg.Email.ResetTTL.Duration)
	if err := s.repo.SetResetToken(ctx, u.ID, tokenHash, expire); err != nil {
		return fmt.Errorf("store reset token for user %s: %w", u.ID, err)
	}

	body := "You are receiving this email because you (or someone else) has requested " +
		"the reset of a password. Your reset token:\n\n" + plain
	if err := s.mailer.SendPlain([]string{u.Email}, "Password reset token", body); err != nil {
		slog.Error("failed to send reset email", "reason", err)
		if clearErr := s.repo.ClearResetToken(ctx, u.ID); clearErr != nil {
			slog.Error("failed to clear reset token after send failure", "reason", clearErr)
		}
		return ErrEmailDelivery
	}

	return nil
}

// ResetPassword redeems a plaintext reset token. The stored digest is matched
// in the lookup and then re-verified with a constant-time comparison together
// with the expiry before the password changes. The password update and the
// token clear run in one transaction, so a redeemed token can never survive.
func (s *Service) ResetPassword(ctx context.Context, plainToken, newPassword string) (string, error) {
	tokenHash := security.HashResetToken(plainToken)

	u, err := s.repo.FindUserByResetToken(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return "", ErrInvalidResetToken
		}
		return "", fmt.Errorf("find user by reset token: %w", err)
	}

	if u.ResetPasswordToken == nil || u.ResetPasswordExpire == nil ||
		!security.VerifyResetToken(plainToken, *u.ResetPasswordToken, *u.ResetPasswordExpire, time.Now()) {
		return "", ErrInvalidResetToken
	}

	newHash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return "", fmt.Errorf("hash new password: %w", err)
	}

	err = s.txMgr.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.ChangeUserPassword(txCtx, u.ID, newHash); err != nil {
			return fmt.Errorf("change password: %w", err)
		}
		if err := s.repo.ClearResetToken(txCtx, u.ID); err != nil {
			return fmt.Errorf("clear reset token: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("reset password for user %s: %w", u.ID, err)
	}

	return s.issueToken(u.ID)
}

// VerifyEmail marks the user encoded in the token as verified. A failed
// signature or expiry check is propagated, never swallowed.
func (s *Service) VerifyEmail(ctx context.Context, token string) error {
	claims, err := s.signer.Verify(token)
	if err != nil {
		slog.Error("verification token rejected", "reason", err)
		return ErrInvalidToken
	}

	if err := s.repo.VerifyUser(ctx, claims.UserID); err != nil {
		return fmt.Errorf("verify user with id %s: %w", claims.UserID, err)
	}

	return nil
}

func (s *Service) issueToken(userID string) (string, error) {
	jwtCfg := s.cfg.JWT
	token, err := s.signer.Sign(userID, []string{jwtCfg.Issuer}, jwtCfg.TTL.Duration)
	if err != nil {
		return "", fmt.Errorf("sign token for user %s: %w", userID, err)
	}
	return token, nil
}
