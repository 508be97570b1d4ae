package email

import (
	"accounts/internal/core/domain/common"
	"accounts/internal/core/domain/email"
	"accounts/internal/core/domain/user"
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const SECRET = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func TestPasswordResetEmail(t *testing.T) {
	fakeSender := email.NewFakeSender()
	baseURL, err := url.Parse("https://example.com/password-reset")
	require.NoError(t, err)
	sender := NewPasswordResetTokenSender(fakeSender, "no-reply@example.com", *baseURL)

	expiresAt := time.Date(2020, 6, 6, 16, 30, 30, 0, time.UTC)
	err = sender.SendPasswordResetToken(
		context.Background(),
		user.User{ID: 1, Email: common.NewEmail("alice@example.com")},
		user.PasswordResetSecret(SECRET),
		expiresAt,
	)

	require.NoError(t, err)
	sent := fakeSender.LastSent()
	require.Equal(t, "no-reply@example.com", sent.From)
	require.Equal(t, "alice@example.com", sent.To)
	require.Equal(t, PasswordResetSubject, sent.Subject)
	require.Contains(t, sent.Text, "https://example.com/password-reset/"+SECRET)
	require.Contains(t, sent.HTML, `href="https://example.com/password-reset/`+SECRET+`"`)
	require.Contains(t, sent.Text, expiresAt.Format(time.RFC1123))
}

func TestPasswordResetEmailSenderError(t *testing.T) {
	fakeSender := email.NewFakeSender()
	fakeSender.ReturnError = true
	sender := NewPasswordResetTokenSender(fakeSender, "no-reply@example.com", url.URL{Scheme: "https", Host: "example.com"})

	err := sender.SendPasswordResetToken(
		context.Background(),
		user.User{ID: 1, Email: common.NewEmail("alice@example.com")},
		user.PasswordResetSecret(SECRET),
		time.Now(),
	)

	require.Error(t, err)
}
