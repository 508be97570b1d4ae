package email

import (
	"accounts/internal/core/domain/email"
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/user"
	"bytes"
	"context"
	"html/template"
	"net/url"
	texttemplate "text/template"
	"time"
)

const PasswordResetSubject = "Password Reset Request"

var passwordResetText = texttemplate.Must(texttemplate.New("text").Parse(
	`You are receiving this because you (or someone else) have requested the reset of the password for your account.

Please open the following link to complete the process:

{{.URL}}

The link is valid until {{.ExpiresAt}}.

If you did not request this, please ignore this email and your password will remain unchanged.
`))

var passwordResetHTML = template.Must(template.New("html").Parse(
	`<p>You are receiving this because you (or someone else) have requested the reset of the password for your account.</p>
<p>Please click on the following link to complete the process:</p>
<p><a href="{{.URL}}">Reset password</a></p>
<p>The link is valid until {{.ExpiresAt}}.</p>
<p>If you did not request this, please ignore this email and your password will remain unchanged.</p>
`))

type passwordResetParams struct {
	URL       string
	ExpiresAt string
}

// PasswordResetTokenSender renders the password reset email and hands it to an email.Sender.
type PasswordResetTokenSender struct {
	sender  email.Sender
	from    string
	baseURL url.URL
}

func NewPasswordResetTokenSender(sender email.Sender, from string, baseURL url.URL) *PasswordResetTokenSender {
	if sender == nil {
		panic(e.NewNilArgumentError("sender"))
	}
	return &PasswordResetTokenSender{sender: sender, from: from, baseURL: baseURL}
}

func (s *PasswordResetTokenSender) SendPasswordResetToken(
	ctx context.Context,
	u user.User,
	secret user.PasswordResetSecret,
	expiresAt time.Time,
) error {
	params := passwordResetParams{
		URL:       s.baseURL.JoinPath(string(secret)).String(),
		ExpiresAt: expiresAt.UTC().Format(time.RFC1123),
	}

	var text bytes.Buffer
	if err := passwordResetText.Execute(&text, params); err != nil {
		return err
	}
	var html bytes.Buffer
	if err := passwordResetHTML.Execute(&html, params); err != nil {
		return err
	}

	return s.sender.Send(ctx, email.Message{
		From:    s.from,
		To:      string(u.Email),
		Subject: PasswordResetSubject,
		Text:    text.String(),
		HTML:    html.String(),
	})
}
