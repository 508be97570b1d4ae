package checkpasswordresettoken

import (
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/logging"
	"accounts/internal/core/domain/user"
	"accounts/internal/core/services"
	"context"
	"errors"
	"time"
)

type Input struct {
	Secret user.PasswordResetSecret
}

type Result struct {
	ExpiresAt time.Time
}

type service struct {
	log             logging.Logger
	tokenRepository user.PasswordResetTokenRepository
	now             func() time.Time
}

// New returns a read-only service that tells whether a secret can still be redeemed.
func New(
	log logging.Logger,
	tokenRepository user.PasswordResetTokenRepository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if tokenRepository == nil {
		panic(e.NewNilArgumentError("tokenRepository"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{log: log, tokenRepository: tokenRepository, now: now}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	token, err := s.tokenRepository.GetBySecret(ctx, input.Secret)
	if errors.Is(err, user.ErrPasswordResetTokenDoesNotExist) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err)
		if errors.Is(err, context.Canceled) {
			return result, err
		}
		return result, user.NewStoreFailure(err)
	}

	if token.IsExpired(s.now()) {
		return result, user.ErrPasswordResetTokenExpired
	}
	return Result{ExpiresAt: token.ExpiresAt}, nil
}
