package sendpasswordresettoken

import (
	c "accounts/internal/core/domain/common"
	"accounts/internal/core/domain/logging"
	"accounts/internal/core/domain/user"
	"accounts/internal/core/services"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	EMAIL         = "alice@example.com"
	PASSWORD_HASH = "test-password-hash"
	SECRET_1      = "test-secret-1"
	SECRET_2      = "test-secret-2"
)

var Now time.Time = time.Date(2020, 6, 6, 15, 30, 30, 0, time.UTC)

type testSuite struct {
	suite.Suite
	Logger          *logging.FakeLogger
	UserRepository  *user.FakeUserRepository
	TokenRepository *user.FakePasswordResetTokenRepository
	Generator       *user.FakePasswordResetSecretGenerator
	Sender          *user.FakePasswordResetTokenSender
	Service         services.Service[Input, Result]
	User            user.User
}

func (s *testSuite) SetupTest() {
	s.Logger = logging.NewFakeLogger()
	s.UserRepository = user.NewFakeUserRepository()
	s.TokenRepository = user.NewFakePasswordResetTokenRepository()
	s.Generator = user.NewFakePasswordResetSecretGenerator(SECRET_1, SECRET_2)
	s.Sender = user.NewFakePasswordResetTokenSender()
	s.Service = New(
		s.Logger,
		s.UserRepository,
		s.TokenRepository,
		s.Generator,
		s.Sender,
		time.Hour,
		func() time.Time { return Now },
	)

	u, err := s.UserRepository.Create(context.Background(), user.CreateUserInput{
		Email:        c.NewEmail(EMAIL),
		PasswordHash: user.PasswordHash(PASSWORD_HASH),
		CreatedAt:    Now,
	})
	s.Require().NoError(err)
	s.User = u
}

func TestSendPasswordResetTokenService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestTokenSavedAndSent() {
	_, err := s.Service.Run(context.Background(), Input{Email: c.NewEmail(EMAIL)})

	assert := s.Require()
	assert.NoError(err)

	token, err := s.TokenRepository.GetBySecret(context.Background(), user.PasswordResetSecret(SECRET_1))
	assert.NoError(err)
	assert.Equal(s.User.ID, token.UserID)
	assert.Equal(Now.Add(time.Hour), token.ExpiresAt)
	assert.Equal(Now, token.CreatedAt)

	assert.Equal(1, s.Sender.SentCount())
	sent := s.Sender.LastSent()
	assert.Equal(s.User.ID, sent.User.ID)
	assert.Equal(user.PasswordResetSecret(SECRET_1), sent.Secret)
	assert.Equal(Now.Add(time.Hour), sent.ExpiresAt)
}

func (s *testSuite) TestSecretIsNotPersistedInPlainText() {
	_, err := s.Service.Run(context.Background(), Input{Email: c.NewEmail(EMAIL)})
	s.Require().NoError(err)

	for _, token := range s.TokenRepository.Tokens {
		s.NotEqual(user.PasswordResetSecretHash(SECRET_1), token.SecretHash)
		s.Equal(user.PasswordResetSecret(SECRET_1).Hash(), token.SecretHash)
	}
	s.False(s.Logger.HasValue(SECRET_1))
	s.False(s.Logger.HasValue(user.PasswordResetSecret(SECRET_1)))
}

func (s *testSuite) TestSecondRequestSupersedesFirstToken() {
	ctx := context.Background()
	_, err := s.Service.Run(ctx, Input{Email: c.NewEmail(EMAIL)})
	s.Require().NoError(err)
	_, err = s.Service.Run(ctx, Input{Email: c.NewEmail(EMAIL)})
	s.Require().NoError(err)

	assert := s.Require()
	assert.Equal(1, s.TokenRepository.Count())
	_, err = s.TokenRepository.GetBySecret(ctx, user.PasswordResetSecret(SECRET_1))
	assert.ErrorIs(err, user.ErrPasswordResetTokenDoesNotExist)
	_, err = s.TokenRepository.GetBySecret(ctx, user.PasswordResetSecret(SECRET_2))
	assert.NoError(err)
	assert.Equal(2, s.Sender.SentCount())
}

func (s *testSuite) TestUnknownEmail() {
	_, err := s.Service.Run(context.Background(), Input{Email: c.NewEmail("nobody@example.com")})

	assert := s.Require()
	assert.ErrorIs(err, user.ErrUserDoesNotExist)
	assert.Equal(0, s.TokenRepository.Count())
	assert.Equal(0, s.Sender.SentCount())
	assert.Equal(1, s.Logger.CountByLevel(logging.INFO))
}

func (s *testSuite) TestDeliveryFailureKeepsToken() {
	s.Sender.ReturnError = true
	_, err := s.Service.Run(context.Background(), Input{Email: c.NewEmail(EMAIL)})

	assert := s.Require()
	assert.ErrorIs(err, user.ErrPasswordResetTokenDeliveryFailed)
	assert.NotErrorIs(err, user.ErrUserDoesNotExist)
	assert.Equal(user.KindDeliveryFailure, user.KindOf(err))

	_, err = s.TokenRepository.GetBySecret(context.Background(), user.PasswordResetSecret(SECRET_1))
	assert.NoError(err)
}

func (s *testSuite) TestStoreFailure() {
	s.TokenRepository.ReturnError = true
	_, err := s.Service.Run(context.Background(), Input{Email: c.NewEmail(EMAIL)})

	assert := s.Require()
	assert.ErrorIs(err, user.ErrStoreFailure)
	assert.Equal(0, s.Sender.SentCount())
}

func (s *testSuite) TestUserLookupFailure() {
	s.UserRepository.ReturnError = true
	_, err := s.Service.Run(context.Background(), Input{Email: c.NewEmail(EMAIL)})

	assert := s.Require()
	assert.ErrorIs(err, user.ErrStoreFailure)
	assert.NotErrorIs(err, user.ErrUserDoesNotExist)
	assert.Equal(0, s.Sender.SentCount())
}

func (s *testSuite) TestGeneratorFailure() {
	s.Generator.ReturnError = true
	_, err := s.Service.Run(context.Background(), Input{Email: c.NewEmail(EMAIL)})

	assert := s.Require()
	assert.Error(err)
	assert.Equal(0, s.TokenRepository.Count())
	assert.Equal(0, s.Sender.SentCount())
}
