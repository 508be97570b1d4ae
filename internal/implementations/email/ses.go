package email

import (
	"accounts/internal/core/domain/email"
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

const charset = "UTF-8"

type sesClient interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// SESSender sends emails with Amazon SES.
// The From address of every message must be verified with Amazon SES.
type SESSender struct {
	ses sesClient
}

func NewSESSender(awsConfig aws.Config) *SESSender {
	return &SESSender{ses: ses.NewFromConfig(awsConfig)}
}

func (s *SESSender) Send(ctx context.Context, message email.Message) error {
	body := &types.Body{}
	if message.Text != "" {
		body.Text = &types.Content{Data: aws.String(message.Text), Charset: aws.String(charset)}
	}
	if message.HTML != "" {
		body.Html = &types.Content{Data: aws.String(message.HTML), Charset: aws.String(charset)}
	}

	_, err := s.ses.SendEmail(
		ctx,
		&ses.SendEmailInput{
			Source: aws.String(message.From),
			Destination: &types.Destination{
				CcAddresses: []string{},
				ToAddresses: []string{message.To},
			},
			Message: &types.Message{
				Subject: &types.Content{Data: aws.String(message.Subject), Charset: aws.String(charset)},
				Body:    body,
			},
		},
	)
	return err
}
