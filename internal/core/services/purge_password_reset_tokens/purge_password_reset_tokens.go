package purgepasswordresettokens

import (
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/logging"
	"accounts/internal/core/domain/user"
	"accounts/internal/core/services"
	"context"
	"time"
)

type Input struct{}

type Result struct {
	DeletedCount int64
}

type service struct {
	log             logging.Logger
	tokenRepository user.PasswordResetTokenRepository
	now             func() time.Time
}

// New returns a service deleting tokens that have already expired.
// Redemption rejects expired tokens on its own, purging only keeps the table small.
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
	now := s.now()
	deleted, err := s.tokenRepository.DeleteExpired(ctx, now)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("before", now))
		return result, user.NewStoreFailure(err)
	}

	if deleted > 0 {
		s.log.Info(
			ctx,
			"Expired password reset tokens have been deleted.",
			logging.Entry("count", deleted),
		)
	}
	return Result{DeletedCount: deleted}, nil
}
