package user

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// PasswordResetSecret is the bearer credential delivered to the user by email.
// It is never persisted, only its hash is.
type PasswordResetSecret string

func (s PasswordResetSecret) String() string {
	return "***"
}

func (s PasswordResetSecret) Hash() PasswordResetSecretHash {
	sum := sha256.Sum256([]byte(s))
	return PasswordResetSecretHash(hex.EncodeToString(sum[:]))
}

type PasswordResetSecretHash string

type PasswordResetToken struct {
	UserID     ID
	SecretHash PasswordResetSecretHash
	ExpiresAt  time.Time
	CreatedAt  time.Time
}

// IsExpired reports whether the token can no longer be redeemed at the moment now.
// A token is still valid at exactly ExpiresAt.
func (t PasswordResetToken) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

type PasswordResetSecretGenerator interface {
	GeneratePasswordResetSecret() (PasswordResetSecret, error)
}

type PasswordResetTokenSender interface {
	SendPasswordResetToken(ctx context.Context, user User, secret PasswordResetSecret, expiresAt time.Time) error
}
