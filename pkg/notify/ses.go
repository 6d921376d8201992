package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"github.com/emsuite/ems-cli/pkg/config"
	"github.com/emsuite/ems-cli/pkg/logger"
)

// SESSender sends error notifications via AWS SES
type SESSender struct {
	client   *ses.Client
	from     string
	fromName string
	to       string
}

// NewSESSender creates a sender from the notify.* configuration
func NewSESSender() (*SESSender, error) {
	region := config.GetString("notify.region")
	from := config.GetString("notify.from")
	to := config.GetString("notify.to")
	if from == "" || to == "" {
		return nil, fmt.Errorf("notify.from and notify.to must be configured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &SESSender{
		client:   ses.NewFromConfig(cfg),
		from:     from,
		fromName: config.GetString("notify.from_name"),
		to:       to,
	}, nil
}

// Send delivers one error-notification email
func (s *SESSender) Send(ctx context.Context, vars TemplateVars) error {
	subject := fmt.Sprintf("Journal errors reported on %s", vars.ProjectName)

	htmlBody := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head><meta charset="UTF-8"></head>
		<body>
			<h2>Work journal error report</h2>
			<p><b>%s</b> reported errors in the daily journal for project <b>%s</b>.</p>
			<p>Affected object IDs: %s</p>
			<p>Date: %s</p>
			<hr>
			<p style="color: #999; font-size: 12px;">This is an automated message from EMS.</p>
		</body>
		</html>
	`, vars.EmployeeName, vars.ProjectName, vars.ObjectIDs, vars.Date)

	textBody := fmt.Sprintf(`Work journal error report

%s reported errors in the daily journal for project %s.

Affected object IDs: %s
Date: %s

This is an automated message from EMS.
`, vars.EmployeeName, vars.ProjectName, vars.ObjectIDs, vars.Date)

	from := s.from
	if s.fromName != "" {
		from = fmt.Sprintf("%s <%s>", s.fromName, s.from)
	}

	input := &ses.SendEmailInput{
		Source: aws.String(from),
		Destination: &types.Destination{
			ToAddresses: []string{s.to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String(subject),
				Charset: aws.String("UTF-8"),
			},
			Body: &types.Body{
				Html: &types.Content{
					Data:    aws.String(htmlBody),
					Charset: aws.String("UTF-8"),
				},
				Text: &types.Content{
					Data:    aws.String(textBody),
					Charset: aws.String("UTF-8"),
				},
			},
		},
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to send error notification: %w", err)
	}

	return nil
}

// NoopSender drops notifications. Used when notify.enabled is off so the
// submission path stays identical with and without a configured mailer.
type NoopSender struct{}

// Send logs and discards the notification
func (NoopSender) Send(ctx context.Context, vars TemplateVars) error {
	logger.Info("Error notification suppressed (notify.enabled=false)",
		"project", vars.ProjectName, "object_ids", vars.ObjectIDs)
	return nil
}

// SenderFromConfig returns the configured sender: SES when notify.enabled and
// addresses are set, otherwise a no-op.
func SenderFromConfig() Sender {
	if !config.GetBool("notify.enabled") {
		return NoopSender{}
	}
	sender, err := NewSESSender()
	if err != nil {
		logger.Warn("Error notifications disabled", "err", err)
		return NoopSender{}
	}
	return sender
}
