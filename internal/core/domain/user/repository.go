package user

import (
	c "accounts/internal/core/domain/common"
	"context"
	"time"
)

type CreateUserInput struct {
	Email        c.Email
	PasswordHash PasswordHash
	FirstName    c.Optional[string]
	LastName     c.Optional[string]
	Location     c.Optional[Location]
	CreatedAt    time.Time
}

type UserRepository interface {
	Create(ctx context.Context, input CreateUserInput) (User, error)
	GetByID(ctx context.Context, id ID) (User, error)
	GetByEmail(ctx context.Context, email c.Email) (User, error)
	SetPassword(ctx context.Context, id ID, password PasswordHash) error
}

type PutPasswordResetTokenInput struct {
	UserID     ID
	SecretHash PasswordResetSecretHash
	ExpiresAt  time.Time
	CreatedAt  time.Time
}

type PasswordResetTokenRepository interface {
	// Put stores the token replacing any token issued to the same user before.
	Put(ctx context.Context, input PutPasswordResetTokenInput) (PasswordResetToken, error)
	GetBySecret(ctx context.Context, secret PasswordResetSecret) (PasswordResetToken, error)
	// Consume deletes the token and returns it, only one of concurrent callers gets the token.
	// Expiration is not checked.
	Consume(ctx context.Context, secret PasswordResetSecret) (PasswordResetToken, error)
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
