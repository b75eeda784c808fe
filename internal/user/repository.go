package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hmondejar/notekit/internal/platform/db"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound       = errors.New("user repository: user not found")
	ErrDuplicateEmail = errors.New("user repository: email already taken")
	ErrQueryFailed    = errors.New("user repository: query failed")
)

const pgUniqueViolation = "23505"

type Repository struct {
	db *sql.DB
}

var _ UserRepository = (*Repository)(nil)

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// exec returns the transaction carried in the context if there is one,
// otherwise the connection pool.
func (r *Repository) exec(ctx context.Context) db.Executor {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db
}

type CreateUserParams struct {
	Email        string
	PasswordHash string
}

const queryUserCreate = `
INSERT INTO users (email, password_hash)
VALUES ($1, $2)
RETURNING id, email, verified, created_at, updated_at
`

func (r *Repository) CreateUser(ctx context.Context, params CreateUserParams) (User, error) {
	row := r.exec(ctx).QueryRowContext(ctx, queryUserCreate, params.Email, params.PasswordHash)
	var u User
	if err := row.Scan(&u.ID, &u.Email, &u.Verified, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return u, ErrDuplicateEmail
		}
		return u, fmt.Errorf("%w: create user with email %s: %v", ErrQueryFailed, params.Email, err)
	}
	return u, nil
}

const queryUserFindByEmail = `
SELECT id, email, password_hash, verified, reset_password_token, reset_password_expire, created_at, updated_at
FROM users
WHERE email = $1
LIMIT 1
`

func (r *Repository) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	row := r.exec(ctx).QueryRowContext(ctx, queryUserFindByEmail, email)
	return scanUser(row, "email "+email)
}

const queryUserFind = `
SELECT id, email, password_hash, verified, reset_password_token, reset_password_expire, created_at, updated_at
FROM users
WHERE id = $1
LIMIT 1
`

func (r *Repository) FindUser(ctx context.Context, userID string) (*User, error) {
	row := r.exec(ctx).QueryRowContext(ctx, queryUserFind, userID)
	return scanUser(row, "id "+userID)
}

const queryUserUpdateEmail = `
UPDATE users SET email = $1, updated_at = NOW()
WHERE id = $2
RETURNING id, email, password_hash, verified, reset_password_token, reset_password_expire, created_at, updated_at
`

func (r *Repository) UpdateUserEmail(ctx context.Context, userID, email string) (*User, error) {
	row := r.exec(ctx).QueryRowContext(ctx, queryUserUpdateEmail, email, userID)
	return scanUser(row, "id "+userID)
}

func scanUser(row *sql.Row, desc string) (*User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Verified,
		&u.ResetPasswordToken, &u.ResetPasswordExpire, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("%w: find user with %s: %v", ErrQueryFailed, desc, err)
	}
	return &u, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
