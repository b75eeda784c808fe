package security

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"time"
)

const resetTokenBytes = 20

// NewResetToken generates a single-use password reset token. It returns the
// plaintext to be mailed to the user and the sha256 hex digest to be
// persisted. The plaintext is never stored.
func NewResetToken() (plain, hash string, err error) {
	raw, err := GenerateRandomBytes(resetTokenBytes)
	if err != nil {
		return "", "", fmt.Errorf("generate reset token: %w", err)
	}

	plain = hex.EncodeToString(raw)
	return plain, HashResetToken(plain), nil
}

// HashResetToken derives the storable digest of a plaintext reset token.
func HashResetToken(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}

// VerifyResetToken checks a presented plaintext token against the stored
// digest and expiry. The digest comparison is constant-time so the check does
// not leak how many leading bytes matched.
func VerifyResetToken(plain, storedHash string, storedExpiry time.Time, now time.Time) bool {
	computed := HashResetToken(plain)
	if subtle.ConstantTimeCompare([]byte(computed), []byte(storedHash)) != 1 {
		return false
	}
	return now.Before(storedExpiry)
}
