package services

import (
	"accounts/internal/app/deps"
	"accounts/internal/core/services"
	checkpasswordresettoken "accounts/internal/core/services/check_password_reset_token"
	"accounts/internal/core/services/instrumentation"
	purgepasswordresettokens "accounts/internal/core/services/purge_password_reset_tokens"
	resetpassword "accounts/internal/core/services/reset_password"
	sendpasswordresettoken "accounts/internal/core/services/send_password_reset_token"
)

type Services struct {
	SendPasswordResetToken   services.Service[sendpasswordresettoken.Input, sendpasswordresettoken.Result]
	ResetPassword            services.Service[resetpassword.Input, resetpassword.Result]
	CheckPasswordResetToken  services.Service[checkpasswordresettoken.Input, checkpasswordresettoken.Result]
	PurgePasswordResetTokens services.Service[purgepasswordresettokens.Input, purgepasswordresettokens.Result]
}

func InitServices(deps *deps.Deps) *Services {
	return &Services{
		SendPasswordResetToken: instrumentation.WithOutcomeRecording(
			deps.MetricsRecorder,
			"send_password_reset_token",
			sendpasswordresettoken.New(
				deps.Logger,
				deps.UserRepository,
				deps.PasswordResetTokenRepository,
				deps.PasswordResetSecretGenerator,
				deps.PasswordResetTokenSender,
				deps.Config.PasswordResetValidDuration,
				deps.Now,
			),
		),
		ResetPassword: instrumentation.WithOutcomeRecording(
			deps.MetricsRecorder,
			"reset_password",
			resetpassword.New(
				deps.Logger,
				deps.UnitOfWork,
				deps.PasswordHasher,
				deps.Now,
			),
		),
		CheckPasswordResetToken: instrumentation.WithOutcomeRecording(
			deps.MetricsRecorder,
			"check_password_reset_token",
			checkpasswordresettoken.New(
				deps.Logger,
				deps.PasswordResetTokenRepository,
				deps.Now,
			),
		),
		PurgePasswordResetTokens: instrumentation.WithOutcomeRecording(
			deps.MetricsRecorder,
			"purge_password_reset_tokens",
			purgepasswordresettokens.New(
				deps.Logger,
				deps.PasswordResetTokenRepository,
				deps.Now,
			),
		),
	}
}
