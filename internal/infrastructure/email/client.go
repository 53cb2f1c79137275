// Package email provides the outbound email client
package email

import (
	"fmt"
	"os"

	"github.com/MeadowlarkTravel/meadowlark-go/internal/infrastructure/observability/logging"
	"github.com/resendlabs/resend-go"
)

// Client sends transactional email through Resend
type Client struct {
	resend    *resend.Client
	fromEmail string
	fromName  string
}

// NewClient builds a Resend-backed client from the environment
func NewClient() (*Client, error) {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("RESEND_API_KEY environment variable is required")
	}

	fromEmail := os.Getenv("EMAIL_FROM")
	if fromEmail == "" {
		fromEmail = "info@meadowlarktravel.com"
	}

	fromName := os.Getenv("EMAIL_FROM_NAME")
	if fromName == "" {
		fromName = "Meadowlark Travel"
	}

	return &Client{
		resend:    resend.NewClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}, nil
}

// Send delivers a single HTML email
func (c *Client) Send(to, subject, htmlBody string) error {
	request := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail),
		To:      []string{to},
		Subject: subject,
		Html:    htmlBody,
	}

	if _, err := c.resend.Emails.Send(request); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// Disabled is the notifier used when no email credentials are configured.
// Sends are dropped and recorded on the mail channel.
type Disabled struct {
	logger *logging.ChanneledLogger
}

// NewDisabled creates a no-op email client
func NewDisabled(logger *logging.ChanneledLogger) *Disabled {
	return &Disabled{logger: logger}
}

// Send drops the message and logs that email delivery is off
func (d *Disabled) Send(to, subject, htmlBody string) error {
	if d.logger != nil {
		d.logger.Mail().Warn("Email delivery disabled; dropping message", "subject", subject)
	}
	return nil
}
