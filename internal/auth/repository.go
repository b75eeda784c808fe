package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hmondejar/notekit/internal/platform/db"
	"github.com/hmondejar/notekit/internal/user"
)

type SQLRepository struct {
	db *sql.DB
}

var _ AuthRepository = (*SQLRepository)(nil)

func NewRepository(db *sql.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) exec(ctx context.Context) db.Executor {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db
}

func (r *SQLRepository) VerifyUser(ctx context.Context, userID string) error {
	const query = "UPDATE users SET verified = TRUE, updated_at = NOW() WHERE id = $1"

	return r.execExpectingRow(ctx, query, userID)
}

func (r *SQLRepository) ChangeUserPassword(ctx context.Context, userID, passwordHash string) error {
	const query = "UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2"

	return r.execExpectingRow(ctx, query, passwordHash, userID)
}

func (r *SQLRepository) SetResetToken(ctx context.Context, userID, tokenHash string, expire time.Time) error {
	const query = `
UPDATE users SET reset_password_token = $1, reset_password_expire = $2, updated_at = NOW()
WHERE id = $3`

	return r.execExpectingRow(ctx, query, tokenHash, expire, userID)
}

func (r *SQLRepository) ClearResetToken(ctx context.Context, userID string) error {
	const query = `
UPDATE users SET reset_password_token = NULL, reset_password_expire = NULL, updated_at = NOW()
WHERE id = $1`

	return r.execExpectingRow(ctx, query, userID)
}

const queryFindByResetToken = `
SELECT id, email, password_hash, verified, reset_password_token, reset_password_expire, created_at, updated_at
FROM users
WHERE reset_password_token = $1 AND reset_password_expire > NOW()
LIMIT 1
`

func (r *SQLRepository) FindUserByResetToken(ctx context.Context, tokenHash string) (*user.User, error) {
	row := r.exec(ctx).QueryRowContext(ctx, queryFindByResetToken, tokenHash)
	var u user.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Verified,
		&u.ResetPasswordToken, &u.ResetPasswordExpire, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, user.ErrNotFound
		}
		return nil, fmt.Errorf("find user by reset token: %w", err)
	}
	return &u, nil
}

func (r *SQLRepository) execExpectingRow(ctx context.Context, query string, args ...any) error {
	res, err := r.exec(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("execute query: %w", err)
	}

	numRows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}

	if numRows == 0 {
		return user.ErrNotFound
	}

	return nil
}
