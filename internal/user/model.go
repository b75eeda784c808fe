package user

import "time"

// User is a registered account. PasswordHash never leaves the API; the reset
// fields are set together while a password reset is outstanding and cleared
// together otherwise.
type User struct {
	ID                  string     `json:"id"`
	Email               string     `json:"email"`
	PasswordHash        string     `json:"-"`
	Verified            bool       `json:"verified"`
	ResetPasswordToken  *string    `json:"-"`
	ResetPasswordExpire *time.Time `json:"-"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}
