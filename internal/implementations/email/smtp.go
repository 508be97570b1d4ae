package email

import (
	"accounts/internal/core/domain/email"
	"context"

	"gopkg.in/gomail.v2"
)

type smtpDialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPSender sends emails through an SMTP relay.
type SMTPSender struct {
	dialer smtpDialer
}

func NewSMTPSender(host string, port int, username string, password string) *SMTPSender {
	return &SMTPSender{dialer: gomail.NewDialer(host, port, username, password)}
}

func (s *SMTPSender) Send(ctx context.Context, message email.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.dialer.DialAndSend(newGomailMessage(message))
}

func newGomailMessage(message email.Message) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", message.From)
	msg.SetHeader("To", message.To)
	msg.SetHeader("Subject", message.Subject)

	msg.SetBody("text/plain", message.Text)
	if message.HTML != "" {
		msg.AddAlternative("text/html", message.HTML)
	}
	return msg
}
