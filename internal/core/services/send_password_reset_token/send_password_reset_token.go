package sendpasswordresettoken

import (
	c "accounts/internal/core/domain/common"
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/logging"
	"accounts/internal/core/domain/user"
	"accounts/internal/core/services"
	"context"
	"errors"
	"time"
)

type Input struct {
	Email c.Email
}

// Result is empty, the secret only leaves the service through the sender.
type Result struct{}

type service struct {
	log             logging.Logger
	userRepository  user.UserRepository
	tokenRepository user.PasswordResetTokenRepository
	secretGenerator user.PasswordResetSecretGenerator
	sender          user.PasswordResetTokenSender
	validDuration   time.Duration
	now             func() time.Time
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	tokenRepository user.PasswordResetTokenRepository,
	secretGenerator user.PasswordResetSecretGenerator,
	sender user.PasswordResetTokenSender,
	validDuration time.Duration,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if tokenRepository == nil {
		panic(e.NewNilArgumentError("tokenRepository"))
	}
	if secretGenerator == nil {
		panic(e.NewNilArgumentError("secretGenerator"))
	}
	if sender == nil {
		panic(e.NewNilArgumentError("sender"))
	}
	if validDuration <= 0 {
		panic(e.NewInvalidStateError("password reset token valid duration must be positive"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:             log,
		userRepository:  userRepository,
		tokenRepository: tokenRepository,
		secretGenerator: secretGenerator,
		sender:          sender,
		validDuration:   validDuration,
		now:             now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	u, err := s.userRepository.GetByEmail(ctx, input.Email)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Info(
			ctx,
			"Password reset requested for unknown email.",
			logging.Entry("email", input.Email),
		)
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user for password reset.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, user.NewStoreFailure(err)
	}

	secret, err := s.secretGenerator.GeneratePasswordResetSecret()
	if err != nil {
		s.log.Error(
			ctx,
			"Could not generate password reset secret.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	now := s.now()
	token, err := s.tokenRepository.Put(ctx, user.PutPasswordResetTokenInput{
		UserID:     u.ID,
		SecretHash: secret.Hash(),
		ExpiresAt:  now.Add(s.validDuration),
		CreatedAt:  now,
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not save password reset token.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, user.NewStoreFailure(err)
	}

	// The token stays saved if sending fails, a retried request supersedes it.
	err = s.sender.SendPasswordResetToken(ctx, u, secret, token.ExpiresAt)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not send password reset token.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, user.NewDeliveryFailure(err)
	}

	s.log.Info(
		ctx,
		"Password reset token has been sent to the user.",
		logging.Entry("userID", u.ID),
		logging.Entry("expiresAt", token.ExpiresAt),
	)
	return result, nil
}
