package email

import (
	"context"
	"fmt"
	"net/url"

	"mapacademy/internal/core/domain/user"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

const charsetUTF8 = "UTF-8"

type EmailSender struct {
	ses *ses.Client
	// This address must be verified with Amazon SES.
	sender               string
	passwordResetBaseURL url.URL
}

func NewEmailSender(
	awsConfig aws.Config,
	sender string,
	passwordResetBaseURL url.URL,
) *EmailSender {
	return &EmailSender{
		ses:                  ses.NewFromConfig(awsConfig),
		sender:               sender,
		passwordResetBaseURL: passwordResetBaseURL,
	}
}

func (s *EmailSender) SendToken(ctx context.Context, u user.User, token user.PasswordResetToken) error {
	passwordResetURL := s.passwordResetBaseURL.JoinPath(string(token)).String()
	subject := "Password recovery request"
	htmlBody := fmt.Sprintf(
		`<p>Click <a href="%s">here</a> to set a new password.</p>`,
		passwordResetURL,
	)

	email := string(u.Email)
	_, err := s.ses.SendEmail(
		ctx,
		&ses.SendEmailInput{
			Source: &s.sender,
			Destination: &types.Destination{
				ToAddresses: []string{email},
			},
			Message: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String(charsetUTF8),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(htmlBody),
						Charset: aws.String(charsetUTF8),
					},
				},
			},
		},
	)
	return err
}
