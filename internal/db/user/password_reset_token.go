package user

import (
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/user"
	"accounts/internal/db/sqlcgen"
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v4"
)

type PgxPasswordResetTokenRepository struct {
	queries *sqlcgen.Queries
}

func NewPgxPasswordResetTokenRepository(db sqlcgen.DBTX) *PgxPasswordResetTokenRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxPasswordResetTokenRepository{queries: sqlcgen.New(db)}
}

func (r *PgxPasswordResetTokenRepository) Put(
	ctx context.Context,
	input user.PutPasswordResetTokenInput,
) (t user.PasswordResetToken, err error) {
	dbtoken, err := r.queries.PutPasswordResetToken(ctx, sqlcgen.PutPasswordResetTokenParams{
		UserID:     int64(input.UserID),
		SecretHash: string(input.SecretHash),
		ExpiresAt:  input.ExpiresAt,
		CreatedAt:  input.CreatedAt,
	})
	if err != nil {
		return t, err
	}
	return decodePasswordResetToken(dbtoken), nil
}

func (r *PgxPasswordResetTokenRepository) GetBySecret(
	ctx context.Context,
	secret user.PasswordResetSecret,
) (t user.PasswordResetToken, err error) {
	dbtoken, err := r.queries.GetPasswordResetTokenBySecretHash(ctx, string(secret.Hash()))
	if errors.Is(err, pgx.ErrNoRows) {
		return t, user.ErrPasswordResetTokenDoesNotExist
	}
	if err != nil {
		return t, err
	}
	return decodePasswordResetToken(dbtoken), nil
}

// Consume deletes the row and returns it. A concurrent transaction deleting the same row
// blocks on the row lock until this one finishes and gets no rows if it has committed.
func (r *PgxPasswordResetTokenRepository) Consume(
	ctx context.Context,
	secret user.PasswordResetSecret,
) (t user.PasswordResetToken, err error) {
	dbtoken, err := r.queries.ConsumePasswordResetToken(ctx, string(secret.Hash()))
	if errors.Is(err, pgx.ErrNoRows) {
		return t, user.ErrPasswordResetTokenDoesNotExist
	}
	if err != nil {
		return t, err
	}
	return decodePasswordResetToken(dbtoken), nil
}

func (r *PgxPasswordResetTokenRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	return r.queries.DeleteExpiredPasswordResetTokens(ctx, before)
}

func decodePasswordResetToken(t sqlcgen.PasswordResetToken) user.PasswordResetToken {
	return user.PasswordResetToken{
		UserID:     user.ID(t.UserID),
		SecretHash: user.PasswordResetSecretHash(t.SecretHash),
		ExpiresAt:  t.ExpiresAt,
		CreatedAt:  t.CreatedAt,
	}
}
