package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/config"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/logger"
)

// Message is an outgoing email.
type Message struct {
	To      []string
	Subject string
	HTML    string
	Text    string
}

// Sender delivers messages.
type Sender interface {
	Send(ctx context.Context, msg *Message) error
}

// SESAPI is the part of the SES v2 client used to send mail.
type SESAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

type sesSender struct {
	client SESAPI
	from   string
	logger logger.Logger
}

// NewSESClient builds an SES v2 client for settings. Static credentials are
// used when both keys are set, the default AWS chain otherwise.
func NewSESClient(ctx context.Context, settings config.MailSettings) (*sesv2.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(settings.Region)}
	if settings.AccessKey != "" && settings.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(settings.AccessKey, settings.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}
	return sesv2.NewFromConfig(awsCfg), nil
}

// NewSESSender creates a Sender delivering through SES from the configured address.
func NewSESSender(client SESAPI, settings config.MailSettings, logger logger.Logger) Sender {
	return &sesSender{
		client: client,
		from:   fromAddress(settings),
		logger: logger,
	}
}

func (s *sesSender) Send(ctx context.Context, msg *Message) error {
	if len(msg.To) == 0 {
		return fmt.Errorf("message %q has no recipient", msg.Subject)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(s.from),
		Destination:      &types.Destination{ToAddresses: msg.To},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String("UTF-8")},
				Body: &types.Body{
					Html: &types.Content{Data: aws.String(msg.HTML), Charset: aws.String("UTF-8")},
				},
			},
		},
	}
	if msg.Text != "" {
		input.Content.Simple.Body.Text = &types.Content{Data: aws.String(msg.Text), Charset: aws.String("UTF-8")}
	}

	result, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send %q through SES: %w", msg.Subject, err)
	}

	messageID := ""
	if result.MessageId != nil {
		messageID = *result.MessageId
	}
	s.logger.Info("Sent email ", messageID, " to ", len(msg.To), " recipient(s)")
	return nil
}

type logSender struct {
	logger logger.Logger
}

// NewLogSender creates a Sender that only logs messages.
func NewLogSender(logger logger.Logger) Sender {
	return &logSender{logger: logger}
}

func (s *logSender) Send(_ context.Context, msg *Message) error {
	s.logger.Info("Email to ", strings.Join(msg.To, ", "), ": ", msg.Subject)
	return nil
}

func fromAddress(settings config.MailSettings) string {
	if settings.FromName == "" {
		return settings.FromEmail
	}
	return fmt.Sprintf("%s <%s>", settings.FromName, settings.FromEmail)
}
