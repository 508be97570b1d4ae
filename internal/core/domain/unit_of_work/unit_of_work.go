package uow

import (
	"accounts/internal/core/domain/user"
	"context"
)

type Context interface {
	Rollback(ctx context.Context) error
	Commit(ctx context.Context) error

	Users() user.UserRepository
	PasswordResetTokens() user.PasswordResetTokenRepository
}

type UnitOfWork interface {
	Begin(ctx context.Context) (Context, error)
}
