package resetpassword

import (
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/logging"
	uow "accounts/internal/core/domain/unit_of_work"
	"accounts/internal/core/domain/user"
	"accounts/internal/core/services"
	"context"
	"errors"
	"time"
)

type Input struct {
	Secret      user.PasswordResetSecret
	NewPassword user.RawPassword
}

type Result struct {
	UserID user.ID
}

type service struct {
	log            logging.Logger
	unitOfWork     uow.UnitOfWork
	passwordHasher user.PasswordHasher
	now            func() time.Time
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	passwordHasher user.PasswordHasher,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		unitOfWork:     unitOfWork,
		passwordHasher: passwordHasher,
		now:            now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	newPasswordHash, err := s.passwordHasher.HashPassword(input.NewPassword)
	if err != nil {
		s.log.Error(ctx, "Could not hash password.", logging.Entry("err", err))
		return result, err
	}

	uow, err := s.unitOfWork.Begin(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not begin unit of work.", logging.Entry("err", err))
		return result, user.NewStoreFailure(err)
	}
	defer uow.Rollback(ctx)

	// Consuming takes the row lock, a concurrent redemption of the same secret
	// waits for this unit of work and then finds nothing.
	token, err := uow.PasswordResetTokens().Consume(ctx, input.Secret)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrPasswordResetTokenDoesNotExist) {
		s.log.Info(ctx, "Password reset token does not exist.")
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not consume password reset token.", logging.Entry("err", err))
		return result, user.NewStoreFailure(err)
	}

	if token.IsExpired(s.now()) {
		s.log.Info(
			ctx,
			"Password reset token has expired.",
			logging.Entry("userID", token.UserID),
			logging.Entry("expiresAt", token.ExpiresAt),
		)
		return result, user.ErrPasswordResetTokenExpired
	}

	err = uow.Users().SetPassword(ctx, token.UserID, newPasswordHash)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not update user password.",
			logging.Entry("userID", token.UserID),
			logging.Entry("err", err),
		)
		return result, user.NewStoreFailure(err)
	}

	err = uow.Commit(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not commit unit of work.",
			logging.Entry("userID", token.UserID),
			logging.Entry("err", err),
		)
		return result, user.NewStoreFailure(err)
	}

	s.log.Info(
		ctx,
		"New password has been successfully set.",
		logging.Entry("userID", token.UserID),
	)
	return Result{UserID: token.UserID}, nil
}
